package middleware

import (
	"net/http"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/worktime-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManager requires manager, admin, or HR role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		if role != employee.RoleManager && role != employee.RoleAdmin && role != employee.RoleHR {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAdmin requires admin or HR role
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, employee.ErrAdminAccessRequired)
			return
		}

		if role != employee.RoleAdmin && role != employee.RoleHR {
			response.HandleError(w, employee.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func roleFromContext(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}

	return employee.Role(roleStr), true
}
