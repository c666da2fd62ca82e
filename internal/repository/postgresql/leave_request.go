package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/leave"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.leave_type, lr.start_date, lr.end_date, lr.reason,
	lr.manager_status, lr.admin_status, lr.approver_id, lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row) (leave.Request, error) {
	var lr leave.Request
	err := row.Scan(
		&lr.ID, &lr.EmployeeID, &lr.LeaveType, &lr.StartDate, &lr.EndDate, &lr.Reason,
		&lr.ManagerStatus, &lr.AdminStatus, &lr.ApproverID, &lr.CreatedAt, &lr.UpdatedAt,
	)
	return lr, err
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, leave_type, start_date, end_date, reason,
			manager_status, admin_status, approver_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	request.ID = uuid.NewString()
	err := q.QueryRow(ctx, query,
		request.ID,
		request.EmployeeID,
		request.LeaveType,
		request.StartDate,
		request.EndDate,
		request.Reason,
		request.ManagerStatus,
		request.AdminStatus,
		request.ApproverID,
	).Scan(&request.CreatedAt, &request.UpdatedAt)

	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return lr, nil
}

// SetManagerStatus implements leave.RequestRepository.
func (r *leaveRequestRepository) SetManagerStatus(ctx context.Context, id string, status leave.Status) error {
	q := GetQuerier(ctx, r.db)

	// Conditional on no admin decision, so a manager write racing a
	// concurrent admin decision cannot land after finalization. Callers
	// fetch the request first, so zero rows means it was finalized in
	// between.
	query := `
		UPDATE leave_requests
		SET manager_status = $2, updated_at = NOW()
		WHERE id = $1
		  AND admin_status IS NULL
	`

	commandTag, err := q.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to set manager status: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return leave.ErrRequestAlreadyFinalized
	}

	return nil
}

// SetAdminStatusIfUnset implements leave.RequestRepository.
func (r *leaveRequestRepository) SetAdminStatusIfUnset(ctx context.Context, id string, status leave.Status) (leave.Status, bool, error) {
	q := GetQuerier(ctx, r.db)

	// Conditional single-shot write: the admin decision lands only once,
	// and the manager status it reports is the one the decision saw.
	query := `
		UPDATE leave_requests
		SET admin_status = $2, updated_at = NOW()
		WHERE id = $1
		  AND admin_status IS NULL
		RETURNING manager_status
	`

	var managerStatus leave.Status
	err := q.QueryRow(ctx, query, id, status).Scan(&managerStatus)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to set admin status: %w", err)
	}

	return managerStatus, true, nil
}

// ListByCurrentManager implements leave.RequestRepository.
func (r *leaveRequestRepository) ListByCurrentManager(ctx context.Context, managerID string) ([]leave.Request, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		INNER JOIN employees e ON e.id = lr.employee_id
		WHERE e.manager_id = $1
		ORDER BY lr.created_at DESC
	`
	return r.listQuery(ctx, query, managerID)
}

// ListManagerApproved implements leave.RequestRepository.
func (r *leaveRequestRepository) ListManagerApproved(ctx context.Context) ([]leave.Request, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.manager_status = 'APPROVED'
		ORDER BY lr.created_at DESC
	`
	return r.listQuery(ctx, query)
}

// ListByEmployee implements leave.RequestRepository.
func (r *leaveRequestRepository) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Request, error) {
	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1
		ORDER BY lr.start_date DESC
	`
	return r.listQuery(ctx, query, employeeID)
}

func (r *leaveRequestRepository) listQuery(ctx context.Context, query string, args ...interface{}) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}
