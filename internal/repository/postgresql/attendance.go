package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/worktime-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.SessionRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.SessionRepository.
func (r *attendanceRepository) Create(ctx context.Context, session attendance.Session) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_sessions (id, employee_id, check_in)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	session.ID = uuid.NewString()
	err := q.QueryRow(ctx, query, session.ID, session.EmployeeID, session.CheckIn).
		Scan(&session.CreatedAt, &session.UpdatedAt)

	if err != nil {
		// The partial unique index on (employee_id) WHERE check_out IS NULL
		// catches two concurrent check-ins that both passed the
		// application-level check.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Session{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Session{}, fmt.Errorf("failed to create attendance session: %w", err)
	}

	return session, nil
}

// HasOpenSessionInWindow implements attendance.SessionRepository.
func (r *attendanceRepository) HasOpenSessionInWindow(ctx context.Context, employeeID string, from, to time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM attendance_sessions
			WHERE employee_id = $1
			  AND check_in >= $2
			  AND check_in <= $3
			  AND check_out IS NULL
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, from, to).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check for open session: %w", err)
	}

	return exists, nil
}

// GetLatestOpenSession implements attendance.SessionRepository.
func (r *attendanceRepository) GetLatestOpenSession(ctx context.Context, employeeID string) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out, working_hours, created_at, updated_at
		FROM attendance_sessions
		WHERE employee_id = $1
		  AND check_out IS NULL
		ORDER BY check_in DESC
		LIMIT 1
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&s.ID, &s.EmployeeID, &s.CheckIn, &s.CheckOut, &s.WorkingHours,
		&s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrNoActiveCheckIn
		}
		return attendance.Session{}, fmt.Errorf("failed to get open session: %w", err)
	}

	return s, nil
}

// Close implements attendance.SessionRepository.
func (r *attendanceRepository) Close(ctx context.Context, id string, checkOut time.Time, workingHours float64) (attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_sessions
		SET check_out = $2, working_hours = $3, updated_at = NOW()
		WHERE id = $1
		  AND check_out IS NULL
		RETURNING id, employee_id, check_in, check_out, working_hours, created_at, updated_at
	`

	var s attendance.Session
	err := q.QueryRow(ctx, query, id, checkOut, workingHours).Scan(
		&s.ID, &s.EmployeeID, &s.CheckIn, &s.CheckOut, &s.WorkingHours,
		&s.CreatedAt, &s.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Session{}, attendance.ErrNoActiveCheckIn
		}
		return attendance.Session{}, fmt.Errorf("failed to close attendance session: %w", err)
	}

	return s, nil
}

// ListByEmployee implements attendance.SessionRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	return r.list(ctx, employeeID, false)
}

// ListCompletedByEmployee implements attendance.SessionRepository.
func (r *attendanceRepository) ListCompletedByEmployee(ctx context.Context, employeeID string) ([]attendance.Session, error) {
	return r.list(ctx, employeeID, true)
}

func (r *attendanceRepository) list(ctx context.Context, employeeID string, completedOnly bool) ([]attendance.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, check_in, check_out, working_hours, created_at, updated_at
		FROM attendance_sessions
		WHERE employee_id = $1
	`
	if completedOnly {
		query += ` AND working_hours IS NOT NULL`
	}
	query += ` ORDER BY check_in DESC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance sessions: %w", err)
	}
	defer rows.Close()

	var sessions []attendance.Session
	for rows.Next() {
		var s attendance.Session
		err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.CheckIn, &s.CheckOut, &s.WorkingHours,
			&s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}
