package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee records.
// The wider employee CRUD lifecycle lives outside this service; these are
// the reads and the single conditional write the time-tracking core needs.
type EmployeeRepository interface {
	// GetByID retrieves an employee by ID
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmail retrieves an employee by email, for login
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// GetManagerID retrieves the employee's current manager reference;
	// nil when the employee has no manager
	GetManagerID(ctx context.Context, employeeID string) (*string, error)

	// DebitLeaveBalance decrements one of the employee's leave balances
	// by the given number of days in a single UPDATE. The balance is not
	// re-checked for sufficiency here; callers validate at application
	// time.
	DebitLeaveBalance(ctx context.Context, employeeID string, balance BalanceKind, days int) error
}
