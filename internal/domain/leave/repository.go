package leave

import (
	"context"
)

// RequestRepository - interface for leave_requests table
type RequestRepository interface {
	Create(ctx context.Context, request Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)

	// SetManagerStatus overwrites the manager decision. The write only
	// lands while no admin decision is recorded; a request finalized
	// between the caller's read and this write reports
	// ErrRequestAlreadyFinalized.
	SetManagerStatus(ctx context.Context, id string, status Status) error

	// SetAdminStatusIfUnset records the admin decision only when no
	// admin has acted yet, and reports the request's manager status as
	// of that same statement. updated is false when another admin
	// decision already landed; run inside a transaction with the
	// balance debit so the debit fires at most once.
	SetAdminStatusIfUnset(ctx context.Context, id string, status Status) (managerStatus Status, updated bool, err error)

	// ListByCurrentManager retrieves requests whose employee currently
	// reports to managerID, newest first.
	ListByCurrentManager(ctx context.Context, managerID string) ([]Request, error)

	// ListManagerApproved retrieves requests with an approved manager
	// decision, newest first. Admins never see manager-pending or
	// manager-rejected requests.
	ListManagerApproved(ctx context.Context) ([]Request, error)

	// ListByEmployee retrieves the employee's requests ordered by start
	// date descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]Request, error)
}
