package attendance

import (
	"context"
	"time"
)

// SessionService defines business logic for attendance sessions.
type SessionService interface {
	// CheckIn opens a new session for the employee at now. Fails with
	// ErrAlreadyCheckedIn when an open session already exists for now's
	// calendar day.
	CheckIn(ctx context.Context, employeeID string, now time.Time) (SessionResponse, error)

	// CheckOut closes the employee's most recent open session at now and
	// records the worked hours. Fails with ErrNoActiveCheckIn when no
	// open session exists.
	CheckOut(ctx context.Context, employeeID string, now time.Time) (SessionResponse, error)

	// History retrieves all of the employee's sessions, newest first.
	History(ctx context.Context, employeeID string) ([]SessionResponse, error)
}
