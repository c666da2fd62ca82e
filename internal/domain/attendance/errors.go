package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn = errors.New("you have already checked in for today")
	ErrNoActiveCheckIn  = errors.New("no active check-in found to check out")
	ErrSessionNotFound  = errors.New("attendance session not found")
)
