package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/leave"
	"github.com/clockwork-hr/worktime-backend-go/internal/handler/http/response"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type LeaveHandler interface {
	Apply(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
	ListForManager(w http.ResponseWriter, r *http.Request)
	ManagerDecide(w http.ResponseWriter, r *http.Request)
	ListForAdmin(w http.ResponseWriter, r *http.Request)
	AdminDecide(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{
		leaveService: leaveService,
	}
}

// Apply implements LeaveHandler.
func (h *leaveHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	var req leave.ApplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.leaveService.Apply(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted successfully", result)
}

// History implements LeaveHandler.
func (h *leaveHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	result, err := h.leaveService.History(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListForManager implements LeaveHandler.
func (h *leaveHandlerImpl) ListForManager(w http.ResponseWriter, r *http.Request) {
	managerID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	result, err := h.leaveService.ListForManager(r.Context(), managerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ManagerDecide implements LeaveHandler.
func (h *leaveHandlerImpl) ManagerDecide(w http.ResponseWriter, r *http.Request) {
	managerID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Unauthorized(w, "Missing employee identity")
		return
	}

	leaveID := chi.URLParam(r, "leaveID")
	if !validator.IsValidUUID(leaveID) {
		response.BadRequest(w, "Leave request ID must be a valid UUID", nil)
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ManagerDecide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.ManagerDecide(r.Context(), leaveID, managerID, leave.Status(req.Decision))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager decision recorded", result)
}

// ListForAdmin implements LeaveHandler.
func (h *leaveHandlerImpl) ListForAdmin(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListForAdmin(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// AdminDecide implements LeaveHandler.
func (h *leaveHandlerImpl) AdminDecide(w http.ResponseWriter, r *http.Request) {
	leaveID := chi.URLParam(r, "leaveID")
	if !validator.IsValidUUID(leaveID) {
		response.BadRequest(w, "Leave request ID must be a valid UUID", nil)
		return
	}

	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdminDecide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.leaveService.AdminDecide(r.Context(), leaveID, leave.Status(req.Decision))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Admin decision recorded", result)
}
