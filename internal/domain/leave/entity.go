package leave

import (
	"time"
)

type LeaveType string

const (
	LeaveTypeVacation LeaveType = "VACATION"
	LeaveTypeSick     LeaveType = "SICK"
)

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// Request is a leave application moving through the two-stage approval
// workflow: the employee's manager decides first, then an admin finalizes.
// The balance debit happens exactly once, when AdminStatus transitions to
// approved with ManagerStatus already approved.
type Request struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType

	StartDate time.Time
	EndDate   time.Time
	Reason    string

	// ManagerStatus starts pending and stays mutable until an admin has
	// acted. AdminStatus is nil until the admin decision; once set, the
	// request is frozen.
	ManagerStatus Status
	AdminStatus   *Status

	// ApproverID is the employee's manager captured at submission time.
	// Reassigning the employee later does not retarget in-flight
	// requests.
	ApproverID *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Finalized reports whether an admin has already acted on the request.
func (r Request) Finalized() bool {
	return r.AdminStatus != nil
}
