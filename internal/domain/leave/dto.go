package leave

import (
	"time"

	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeID string `json:"-"`
	LeaveType  string `json:"leave_type"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
	EndDate    string `json:"end_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, []string{string(LeaveTypeVacation), string(LeaveTypeSick)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of: VACATION, SICK",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be a valid date in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be a valid date in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecisionRequest struct {
	Decision string `json:"decision"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Decision, []string{string(StatusApproved), string(StatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be one of: APPROVED, REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RequestResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	LeaveType     string  `json:"leave_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Reason        string  `json:"reason"`
	BusinessDays  int     `json:"business_days"`
	ManagerStatus string  `json:"manager_status"`
	AdminStatus   *string `json:"admin_status,omitempty"`
	ApproverID    *string `json:"approver_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

func NewRequestResponse(r Request, businessDays int) RequestResponse {
	var adminStatus *string
	if r.AdminStatus != nil {
		s := string(*r.AdminStatus)
		adminStatus = &s
	}
	return RequestResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		LeaveType:     string(r.LeaveType),
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		Reason:        r.Reason,
		BusinessDays:  businessDays,
		ManagerStatus: string(r.ManagerStatus),
		AdminStatus:   adminStatus,
		ApproverID:    r.ApproverID,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
}
