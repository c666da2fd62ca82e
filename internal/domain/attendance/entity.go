package attendance

import (
	"time"
)

// Session is one check-in/check-out pair for an employee. A session with a
// nil CheckOut is "open"; an employee may hold at most one open session at
// a time.
type Session struct {
	ID         string
	EmployeeID string
	CheckIn    time.Time
	CheckOut   *time.Time

	// WorkingHours is set exactly once at checkout, as the check-in to
	// check-out span in hours rounded to 2 decimals. Never recomputed.
	WorkingHours *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
