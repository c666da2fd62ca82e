package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/dates"
)

type SessionServiceImpl struct {
	attendance.SessionRepository
}

func NewSessionService(sessionRepository attendance.SessionRepository) attendance.SessionService {
	return &SessionServiceImpl{
		SessionRepository: sessionRepository,
	}
}

// CheckIn implements attendance.SessionService.
func (s *SessionServiceImpl) CheckIn(ctx context.Context, employeeID string, now time.Time) (attendance.SessionResponse, error) {
	// The day window applies only to this conflict check; checkout looks
	// up the latest open session regardless of date.
	hasOpen, err := s.SessionRepository.HasOpenSessionInWindow(ctx, employeeID, dates.StartOfDay(now), dates.EndOfDay(now))
	if err != nil {
		return attendance.SessionResponse{}, fmt.Errorf("failed to check for open session: %w", err)
	}
	if hasOpen {
		return attendance.SessionResponse{}, attendance.ErrAlreadyCheckedIn
	}

	session, err := s.SessionRepository.Create(ctx, attendance.Session{
		EmployeeID: employeeID,
		CheckIn:    now,
	})
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return attendance.NewSessionResponse(session), nil
}

// CheckOut implements attendance.SessionService.
func (s *SessionServiceImpl) CheckOut(ctx context.Context, employeeID string, now time.Time) (attendance.SessionResponse, error) {
	open, err := s.SessionRepository.GetLatestOpenSession(ctx, employeeID)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	workingHours := roundHours(now.Sub(open.CheckIn))

	closed, err := s.SessionRepository.Close(ctx, open.ID, now, workingHours)
	if err != nil {
		return attendance.SessionResponse{}, err
	}

	return attendance.NewSessionResponse(closed), nil
}

// History implements attendance.SessionService.
func (s *SessionServiceImpl) History(ctx context.Context, employeeID string) ([]attendance.SessionResponse, error) {
	sessions, err := s.SessionRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	return attendance.NewSessionResponses(sessions), nil
}

// roundHours converts a worked duration to hours with 2-decimal precision.
func roundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
