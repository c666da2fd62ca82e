package http

import (
	"net/http"
	"time"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/analytics"
	"github.com/clockwork-hr/worktime-backend-go/internal/handler/http/response"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AnalyticsHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// Monthly implements AnalyticsHandler.
func (h *analyticsHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	monthParam := r.URL.Query().Get("month")
	if monthParam == "" {
		monthParam = time.Now().Format("2006-01")
	}
	month, err := time.Parse("2006-01", monthParam)
	if err != nil {
		response.BadRequest(w, "month must be in YYYY-MM format", nil)
		return
	}

	result, err := h.analyticsService.MonthlyStats(r.Context(), employeeID, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// History implements AnalyticsHandler.
func (h *analyticsHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if !validator.IsValidUUID(employeeID) {
		response.BadRequest(w, "Employee ID must be a valid UUID", nil)
		return
	}

	result, err := h.analyticsService.FullHistory(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
