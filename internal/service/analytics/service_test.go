package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionReader serves completed sessions newest first, the order the
// real repository returns them in.
type fakeSessionReader struct {
	completed []attendance.Session
}

func (f *fakeSessionReader) Create(_ context.Context, _ attendance.Session) (attendance.Session, error) {
	return attendance.Session{}, nil
}

func (f *fakeSessionReader) HasOpenSessionInWindow(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}

func (f *fakeSessionReader) GetLatestOpenSession(_ context.Context, _ string) (attendance.Session, error) {
	return attendance.Session{}, attendance.ErrNoActiveCheckIn
}

func (f *fakeSessionReader) Close(_ context.Context, _ string, _ time.Time, _ float64) (attendance.Session, error) {
	return attendance.Session{}, attendance.ErrSessionNotFound
}

func (f *fakeSessionReader) ListByEmployee(_ context.Context, _ string) ([]attendance.Session, error) {
	return f.completed, nil
}

func (f *fakeSessionReader) ListCompletedByEmployee(_ context.Context, _ string) ([]attendance.Session, error) {
	return f.completed, nil
}

func completedSession(employeeID string, checkIn time.Time, hours float64) attendance.Session {
	checkOut := checkIn.Add(time.Duration(hours * float64(time.Hour)))
	return attendance.Session{
		ID:           checkIn.Format(time.RFC3339),
		EmployeeID:   employeeID,
		CheckIn:      checkIn,
		CheckOut:     &checkOut,
		WorkingHours: &hours,
	}
}

func TestAnalyticsService_MonthlyStats(t *testing.T) {
	repo := &fakeSessionReader{completed: []attendance.Session{
		// Newest first.
		completedSession("emp-1", time.Date(2024, time.June, 4, 9, 0, 0, 0, time.UTC), 3.5),
		completedSession("emp-1", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), 4.0),
		// Outside the requested month.
		completedSession("emp-1", time.Date(2024, time.May, 31, 9, 0, 0, 0, time.UTC), 8.0),
	}}
	service := NewAnalyticsService(repo)

	stats, err := service.MonthlyStats(context.Background(), "emp-1", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, "2024-06", stats.Month)
	assert.Equal(t, 2, stats.DaysWorked)
	assert.Equal(t, 7.5, stats.TotalHoursWorked)
	assert.Equal(t, 3.75, stats.AverageWorkHours)
	assert.Equal(t, 0, stats.LateDays)
}

func TestAnalyticsService_MonthlyStats_MultipleSessionsSameDay(t *testing.T) {
	repo := &fakeSessionReader{completed: []attendance.Session{
		completedSession("emp-1", time.Date(2024, time.June, 3, 14, 0, 0, 0, time.UTC), 4.0),
		completedSession("emp-1", time.Date(2024, time.June, 3, 8, 0, 0, 0, time.UTC), 4.0),
	}}
	service := NewAnalyticsService(repo)

	stats, err := service.MonthlyStats(context.Background(), "emp-1", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	// Two sessions on one calendar day count as one day worked.
	assert.Equal(t, 1, stats.DaysWorked)
	assert.Equal(t, 8.0, stats.TotalHoursWorked)
	assert.Equal(t, 8.0, stats.AverageWorkHours)
	// The day's earliest check-in was 08:00, so it is not late even
	// though the afternoon session started past the threshold.
	assert.Equal(t, 0, stats.LateDays)
}

func TestAnalyticsService_MonthlyStats_LateDays(t *testing.T) {
	repo := &fakeSessionReader{completed: []attendance.Session{
		completedSession("emp-1", time.Date(2024, time.June, 5, 10, 0, 0, 0, time.UTC), 6.0),  // 10:00 is late
		completedSession("emp-1", time.Date(2024, time.June, 4, 10, 15, 0, 0, time.UTC), 6.0), // late
		completedSession("emp-1", time.Date(2024, time.June, 3, 9, 59, 0, 0, time.UTC), 8.0),  // on time
	}}
	service := NewAnalyticsService(repo)

	stats, err := service.MonthlyStats(context.Background(), "emp-1", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 3, stats.DaysWorked)
	assert.Equal(t, 2, stats.LateDays)
}

func TestAnalyticsService_MonthlyStats_EmptyMonth(t *testing.T) {
	service := NewAnalyticsService(&fakeSessionReader{})

	stats, err := service.MonthlyStats(context.Background(), "emp-1", time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.Equal(t, 0, stats.DaysWorked)
	assert.Equal(t, 0.0, stats.TotalHoursWorked)
	assert.Equal(t, 0.0, stats.AverageWorkHours)
	assert.Equal(t, 0, stats.LateDays)
}

func TestAnalyticsService_FullHistory_Buckets(t *testing.T) {
	repo := &fakeSessionReader{completed: []attendance.Session{
		// Newest first, spanning two years.
		completedSession("emp-1", time.Date(2024, time.June, 4, 9, 0, 0, 0, time.UTC), 3.5),
		completedSession("emp-1", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), 4.0),
		completedSession("emp-1", time.Date(2024, time.May, 31, 9, 0, 0, 0, time.UTC), 8.0),
		completedSession("emp-1", time.Date(2023, time.December, 15, 9, 0, 0, 0, time.UTC), 7.0),
	}}
	service := NewAnalyticsService(repo)

	history, err := service.FullHistory(context.Background(), "emp-1")
	require.NoError(t, err)

	require.Len(t, history.Yearly, 2)
	assert.Equal(t, "2024", history.Yearly[0].Period)
	assert.Equal(t, 15.5, history.Yearly[0].Hours)
	assert.Equal(t, "2023", history.Yearly[1].Period)
	assert.Equal(t, 7.0, history.Yearly[1].Hours)

	require.Len(t, history.Monthly, 3)
	assert.Equal(t, "2024-06", history.Monthly[0].Period)
	assert.Equal(t, 7.5, history.Monthly[0].Hours)
	assert.Equal(t, "2024-05", history.Monthly[1].Period)
	assert.Equal(t, "2023-12", history.Monthly[2].Period)

	require.Len(t, history.Daily, 4)
	assert.Equal(t, "2024-06-04", history.Daily[0].Period)
	assert.Equal(t, "2023-12-15", history.Daily[3].Period)
}

func TestAnalyticsService_FullHistory_ISOWeeks(t *testing.T) {
	repo := &fakeSessionReader{completed: []attendance.Session{
		// Mon 2024-06-03 and Tue 2024-06-04 share ISO week 23; Fri
		// 2024-05-31 falls in week 22.
		completedSession("emp-1", time.Date(2024, time.June, 4, 9, 0, 0, 0, time.UTC), 3.5),
		completedSession("emp-1", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), 4.0),
		completedSession("emp-1", time.Date(2024, time.May, 31, 9, 0, 0, 0, time.UTC), 8.0),
	}}
	service := NewAnalyticsService(repo)

	history, err := service.FullHistory(context.Background(), "emp-1")
	require.NoError(t, err)

	require.Len(t, history.Weekly, 2)
	assert.Equal(t, "2024-W23", history.Weekly[0].Period)
	assert.Equal(t, 7.5, history.Weekly[0].Hours)
	assert.Equal(t, "2024-W22", history.Weekly[1].Period)
}

func TestAnalyticsService_FullHistory_MonthlySeriesOldestFirst(t *testing.T) {
	repo := &fakeSessionReader{completed: []attendance.Session{
		completedSession("emp-1", time.Date(2024, time.June, 3, 9, 0, 0, 0, time.UTC), 4.0),
		completedSession("emp-1", time.Date(2024, time.May, 31, 9, 0, 0, 0, time.UTC), 8.0),
		completedSession("emp-1", time.Date(2024, time.April, 10, 9, 0, 0, 0, time.UTC), 6.0),
	}}
	service := NewAnalyticsService(repo)

	history, err := service.FullHistory(context.Background(), "emp-1")
	require.NoError(t, err)

	require.Len(t, history.MonthlySeries, 3)
	assert.Equal(t, "2024-04", history.MonthlySeries[0].Period)
	assert.Equal(t, "2024-05", history.MonthlySeries[1].Period)
	assert.Equal(t, "2024-06", history.MonthlySeries[2].Period)

	// Same totals as the newest-first monthly grouping, just reversed.
	assert.Equal(t, history.Monthly[0].Period, history.MonthlySeries[2].Period)
	assert.Equal(t, history.Monthly[0].Hours, history.MonthlySeries[2].Hours)
}

func TestAnalyticsService_FullHistory_Empty(t *testing.T) {
	service := NewAnalyticsService(&fakeSessionReader{})

	history, err := service.FullHistory(context.Background(), "emp-1")
	require.NoError(t, err)
	assert.Empty(t, history.Yearly)
	assert.Empty(t, history.Monthly)
	assert.Empty(t, history.Weekly)
	assert.Empty(t, history.Daily)
	assert.Empty(t, history.MonthlySeries)
}
