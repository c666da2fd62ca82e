package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/leave"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

type stubLeaveService struct {
	calls int
}

func (s *stubLeaveService) Apply(_ context.Context, _ leave.ApplyRequest) (leave.RequestResponse, error) {
	s.calls++
	return leave.RequestResponse{}, nil
}

func (s *stubLeaveService) ManagerDecide(_ context.Context, _, _ string, _ leave.Status) (leave.RequestResponse, error) {
	s.calls++
	return leave.RequestResponse{}, nil
}

func (s *stubLeaveService) AdminDecide(_ context.Context, _ string, _ leave.Status) (leave.RequestResponse, error) {
	s.calls++
	return leave.RequestResponse{}, nil
}

func (s *stubLeaveService) ListForManager(_ context.Context, _ string) ([]leave.RequestResponse, error) {
	s.calls++
	return nil, nil
}

func (s *stubLeaveService) ListForAdmin(_ context.Context) ([]leave.RequestResponse, error) {
	s.calls++
	return nil, nil
}

func (s *stubLeaveService) History(_ context.Context, _ string) ([]leave.RequestResponse, error) {
	s.calls++
	return nil, nil
}

func TestLeaveHandler_AdminDecide_InvalidLeaveID(t *testing.T) {
	stub := &stubLeaveService{}
	handler := NewLeaveHandler(stub)
	router := chi.NewRouter()
	router.Patch("/leaves/{leaveID}/admin-decision", handler.AdminDecide)

	req := httptest.NewRequest(http.MethodPatch, "/leaves/not-a-uuid/admin-decision",
		strings.NewReader(`{"decision":"APPROVED"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestLeaveHandler_AdminDecide_InvalidDecision(t *testing.T) {
	stub := &stubLeaveService{}
	handler := NewLeaveHandler(stub)
	router := chi.NewRouter()
	router.Patch("/leaves/{leaveID}/admin-decision", handler.AdminDecide)

	req := httptest.NewRequest(http.MethodPatch, "/leaves/123e4567-e89b-12d3-a456-426614174000/admin-decision",
		strings.NewReader(`{"decision":"MAYBE"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, 0, stub.calls)
}

func TestLeaveHandler_AdminDecide_Success(t *testing.T) {
	stub := &stubLeaveService{}
	handler := NewLeaveHandler(stub)
	router := chi.NewRouter()
	router.Patch("/leaves/{leaveID}/admin-decision", handler.AdminDecide)

	req := httptest.NewRequest(http.MethodPatch, "/leaves/123e4567-e89b-12d3-a456-426614174000/admin-decision",
		strings.NewReader(`{"decision":"REJECTED"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, stub.calls)
}
