package leave

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound = errors.New("leave request not found")

	// ErrNotRequestApprover: the caller is not the manager this request
	// is assigned to, or the employee has since been reassigned away.
	ErrNotRequestApprover = errors.New("you are not authorized to update this request")

	// ErrRequestAlreadyFinalized: an admin decision has been recorded;
	// neither status field may change anymore.
	ErrRequestAlreadyFinalized = errors.New("leave request has already been finalized")

	ErrInvalidLeaveType = errors.New("invalid leave type")
)

// InsufficientBalanceError carries the exact remaining balance so the
// caller can render it.
type InsufficientBalanceError struct {
	LeaveType LeaveType
	Remaining decimal.Decimal
}

func (e *InsufficientBalanceError) Error() string {
	name := "vacation"
	if e.LeaveType == LeaveTypeSick {
		name = "sick leave"
	}
	return fmt.Sprintf("insufficient %s balance: you have %s days remaining", name, e.Remaining.String())
}
