package response

import (
	"errors"
	"net/http"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/worktime-backend-go/internal/domain/auth"
	"github.com/clockwork-hr/worktime-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/worktime-backend-go/internal/domain/leave"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Insufficient balance carries the remaining balance in its message
	var insufficientBalance *leave.InsufficientBalanceError
	if errors.As(err, &insufficientBalance) {
		BadRequest(w, insufficientBalance.Error(), nil)
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerAccessRequired),
		errors.Is(err, employee.ErrAdminAccessRequired):
		Forbidden(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "You have already checked in for today")
	case errors.Is(err, attendance.ErrNoActiveCheckIn):
		NotFound(w, "No active check-in found to check out")
	case errors.Is(err, attendance.ErrSessionNotFound):
		NotFound(w, "Attendance session not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNotRequestApprover):
		Forbidden(w, "You are not authorized to update this request")
	case errors.Is(err, leave.ErrRequestAlreadyFinalized):
		Conflict(w, "Leave request has already been finalized")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
