package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/employee"
	"github.com/clockwork-hr/worktime-backend-go/internal/domain/leave"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/dates"
	"github.com/clockwork-hr/worktime-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.RequestRepository
	employee.EmployeeRepository
}

func NewLeaveService(db *database.DB, requestRepository leave.RequestRepository, employeeRepository employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:                 db,
		RequestRepository:  requestRepository,
		EmployeeRepository: employeeRepository,
	}
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	leaveType := leave.LeaveType(req.LeaveType)
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to parse end date: %w", err)
	}

	businessDuration := dates.BusinessDays(startDate, endDate)

	emp, err := l.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	balance := emp.VacationBalance
	if leaveType == leave.LeaveTypeSick {
		balance = emp.SickBalance
	}

	if decimal.NewFromInt(int64(businessDuration)).GreaterThan(balance) {
		return leave.RequestResponse{}, &leave.InsufficientBalanceError{
			LeaveType: leaveType,
			Remaining: balance,
		}
	}

	// The approver is the employee's manager at submission time; later
	// reassignment does not retarget this request. No balance mutation
	// happens until final admin approval.
	created, err := l.RequestRepository.Create(ctx, leave.Request{
		EmployeeID:    emp.ID,
		LeaveType:     leaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        req.Reason,
		ManagerStatus: leave.StatusPending,
		AdminStatus:   nil,
		ApproverID:    emp.ManagerID,
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.NewRequestResponse(created, businessDuration), nil
}

// ManagerDecide implements leave.LeaveService.
func (l *LeaveServiceImpl) ManagerDecide(ctx context.Context, leaveID, managerID string, decision leave.Status) (leave.RequestResponse, error) {
	request, err := l.RequestRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	// Once the admin has acted the request is frozen; the manager may
	// revise their decision only before that.
	if request.Finalized() {
		return leave.RequestResponse{}, leave.ErrRequestAlreadyFinalized
	}

	if request.ApproverID == nil || *request.ApproverID != managerID {
		return leave.RequestResponse{}, leave.ErrNotRequestApprover
	}

	// Re-validate against the employee's current manager: a request
	// whose employee was reassigned away is undecidable by the old
	// manager.
	currentManagerID, err := l.EmployeeRepository.GetManagerID(ctx, request.EmployeeID)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to get current manager: %w", err)
	}
	if currentManagerID == nil || *currentManagerID != managerID {
		return leave.RequestResponse{}, leave.ErrNotRequestApprover
	}

	if err := l.RequestRepository.SetManagerStatus(ctx, leaveID, decision); err != nil {
		return leave.RequestResponse{}, err
	}

	request.ManagerStatus = decision
	return leave.NewRequestResponse(request, dates.BusinessDays(request.StartDate, request.EndDate)), nil
}

// AdminDecide implements leave.LeaveService.
func (l *LeaveServiceImpl) AdminDecide(ctx context.Context, leaveID string, decision leave.Status) (leave.RequestResponse, error) {
	request, err := l.RequestRepository.GetByID(ctx, leaveID)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	if request.Finalized() {
		return leave.RequestResponse{}, leave.ErrRequestAlreadyFinalized
	}

	businessDuration := dates.BusinessDays(request.StartDate, request.EndDate)

	// Status write and balance debit are one transaction, and the write
	// is conditional on no admin decision having landed yet, so the
	// debit fires at most once even under concurrent admin calls.
	err = postgresql.WithTransaction(ctx, l.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		managerStatus, updated, err := l.RequestRepository.SetAdminStatusIfUnset(txCtx, leaveID, decision)
		if err != nil {
			return err
		}
		if !updated {
			return leave.ErrRequestAlreadyFinalized
		}

		// A premature admin decision (manager not yet approved) is
		// recorded but never debits. The sufficiency check from apply
		// time is trusted here; the balance is not re-validated.
		if decision == leave.StatusApproved && managerStatus == leave.StatusApproved {
			balanceKind := employee.BalanceVacation
			if request.LeaveType == leave.LeaveTypeSick {
				balanceKind = employee.BalanceSick
			}
			if err := l.EmployeeRepository.DebitLeaveBalance(txCtx, request.EmployeeID, balanceKind, businessDuration); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	request.AdminStatus = &decision
	return leave.NewRequestResponse(request, businessDuration), nil
}

// ListForManager implements leave.LeaveService.
func (l *LeaveServiceImpl) ListForManager(ctx context.Context, managerID string) ([]leave.RequestResponse, error) {
	requests, err := l.RequestRepository.ListByCurrentManager(ctx, managerID)
	if err != nil {
		return nil, err
	}
	return l.toResponses(requests), nil
}

// ListForAdmin implements leave.LeaveService.
func (l *LeaveServiceImpl) ListForAdmin(ctx context.Context) ([]leave.RequestResponse, error) {
	requests, err := l.RequestRepository.ListManagerApproved(ctx)
	if err != nil {
		return nil, err
	}
	return l.toResponses(requests), nil
}

// History implements leave.LeaveService.
func (l *LeaveServiceImpl) History(ctx context.Context, employeeID string) ([]leave.RequestResponse, error) {
	requests, err := l.RequestRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return l.toResponses(requests), nil
}

func (l *LeaveServiceImpl) toResponses(requests []leave.Request) []leave.RequestResponse {
	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.NewRequestResponse(r, dates.BusinessDays(r.StartDate, r.EndDate)))
	}
	return responses
}
