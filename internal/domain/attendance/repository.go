package attendance

import (
	"context"
	"time"
)

// SessionRepository defines data access methods for attendance sessions.
type SessionRepository interface {
	// Create inserts a new open session. The store also enforces the
	// one-open-session-per-employee invariant with a partial unique
	// index, so a concurrent double check-in surfaces as a constraint
	// violation even when the application-level check raced.
	Create(ctx context.Context, session Session) (Session, error)

	// HasOpenSessionInWindow reports whether the employee has an open
	// session whose check-in falls within [from, to]. Used for the
	// same-day double check-in conflict check.
	HasOpenSessionInWindow(ctx context.Context, employeeID string, from, to time.Time) (bool, error)

	// GetLatestOpenSession retrieves the employee's most recent open
	// session by check-in time, irrespective of date, so a session that
	// spans midnight is still closeable.
	GetLatestOpenSession(ctx context.Context, employeeID string) (Session, error)

	// Close sets the checkout timestamp and working hours on a session.
	// Both fields are written exactly once.
	Close(ctx context.Context, id string, checkOut time.Time, workingHours float64) (Session, error)

	// ListByEmployee retrieves all sessions for the employee ordered by
	// check-in descending.
	ListByEmployee(ctx context.Context, employeeID string) ([]Session, error)

	// ListCompletedByEmployee retrieves sessions with a recorded
	// working-hours value, ordered by check-in descending. Read side for
	// the analytics aggregator.
	ListCompletedByEmployee(ctx context.Context, employeeID string) ([]Session, error)
}
