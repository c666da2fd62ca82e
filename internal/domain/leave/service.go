package leave

import (
	"context"
)

// LeaveService defines business logic for the leave ledger and approval
// workflow.
type LeaveService interface {
	// Apply validates the application against the employee's current
	// balance and creates a pending request assigned to the employee's
	// manager. No balance is debited here.
	Apply(ctx context.Context, req ApplyRequest) (RequestResponse, error)

	// ManagerDecide records the manager decision. The caller must be
	// both the request's captured approver and the employee's current
	// manager. No balance mutation.
	ManagerDecide(ctx context.Context, leaveID, managerID string, decision Status) (RequestResponse, error)

	// AdminDecide records the final admin decision. Approval debits the
	// employee's balance exactly once, and only when the manager has
	// already approved; a premature admin decision is still recorded
	// but never debits.
	AdminDecide(ctx context.Context, leaveID string, decision Status) (RequestResponse, error)

	// ListForManager retrieves requests of the manager's current
	// reports, newest first.
	ListForManager(ctx context.Context, managerID string) ([]RequestResponse, error)

	// ListForAdmin retrieves manager-approved requests, newest first.
	ListForAdmin(ctx context.Context) ([]RequestResponse, error)

	// History retrieves the employee's requests, newest start date
	// first.
	History(ctx context.Context, employeeID string) ([]RequestResponse, error)
}
