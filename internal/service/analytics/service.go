package analytics

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/clockwork-hr/worktime-backend-go/internal/domain/analytics"
	"github.com/clockwork-hr/worktime-backend-go/internal/domain/attendance"
)

// lateHour is the local check-in hour from which a day counts as late.
const lateHour = 10

type AnalyticsServiceImpl struct {
	attendance.SessionRepository
}

func NewAnalyticsService(sessionRepository attendance.SessionRepository) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		SessionRepository: sessionRepository,
	}
}

// MonthlyStats implements analytics.AnalyticsService.
func (a *AnalyticsServiceImpl) MonthlyStats(ctx context.Context, employeeID string, month time.Time) (analytics.MonthlyStats, error) {
	sessions, err := a.SessionRepository.ListCompletedByEmployee(ctx, employeeID)
	if err != nil {
		return analytics.MonthlyStats{}, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	stats := analytics.MonthlyStats{
		Month: month.Format("2006-01"),
	}

	// Group the month's sessions by calendar day; a day's lateness is
	// decided by its earliest check-in.
	dailyHours := make(map[string]float64)
	earliestCheckIn := make(map[string]time.Time)
	for _, s := range sessions {
		if s.CheckIn.Year() != month.Year() || s.CheckIn.Month() != month.Month() {
			continue
		}
		day := s.CheckIn.Format("2006-01-02")
		dailyHours[day] += *s.WorkingHours
		if first, ok := earliestCheckIn[day]; !ok || s.CheckIn.Before(first) {
			earliestCheckIn[day] = s.CheckIn
		}
	}

	stats.DaysWorked = len(dailyHours)
	for _, hours := range dailyHours {
		stats.TotalHoursWorked += hours
	}
	stats.TotalHoursWorked = round2(stats.TotalHoursWorked)
	if stats.DaysWorked > 0 {
		stats.AverageWorkHours = round2(stats.TotalHoursWorked / float64(stats.DaysWorked))
	}
	for _, checkIn := range earliestCheckIn {
		if checkIn.Hour() >= lateHour {
			stats.LateDays++
		}
	}

	return stats, nil
}

// FullHistory implements analytics.AnalyticsService.
func (a *AnalyticsServiceImpl) FullHistory(ctx context.Context, employeeID string) (analytics.HistoryAnalytics, error) {
	sessions, err := a.SessionRepository.ListCompletedByEmployee(ctx, employeeID)
	if err != nil {
		return analytics.HistoryAnalytics{}, fmt.Errorf("failed to list completed sessions: %w", err)
	}

	// Sessions arrive newest first, so every bucket list is generated
	// newest first as well.
	yearly := newBucketSet()
	monthly := newBucketSet()
	weekly := newBucketSet()
	daily := newBucketSet()

	for _, s := range sessions {
		hours := *s.WorkingHours
		yearly.add(s.CheckIn.Format("2006"), hours)
		monthly.add(s.CheckIn.Format("2006-01"), hours)
		weekly.add(isoWeekKey(s.CheckIn), hours)
		daily.add(s.CheckIn.Format("2006-01-02"), hours)
	}

	monthlyTotals := monthly.totals()

	// The charting series wants oldest first; reverse the newest-first
	// monthly grouping.
	series := make([]analytics.PeriodTotal, len(monthlyTotals))
	for i, pt := range monthlyTotals {
		series[len(monthlyTotals)-1-i] = pt
	}

	return analytics.HistoryAnalytics{
		Yearly:        yearly.totals(),
		Monthly:       monthlyTotals,
		Weekly:        weekly.totals(),
		Daily:         daily.totals(),
		MonthlySeries: series,
	}, nil
}

// bucketSet accumulates hours per period key, preserving first-seen order.
type bucketSet struct {
	order []string
	sums  map[string]float64
}

func newBucketSet() *bucketSet {
	return &bucketSet{sums: make(map[string]float64)}
}

func (b *bucketSet) add(key string, hours float64) {
	if _, ok := b.sums[key]; !ok {
		b.order = append(b.order, key)
	}
	b.sums[key] += hours
}

func (b *bucketSet) totals() []analytics.PeriodTotal {
	totals := make([]analytics.PeriodTotal, 0, len(b.order))
	for _, key := range b.order {
		totals = append(totals, analytics.PeriodTotal{
			Period: key,
			Hours:  round2(b.sums[key]),
		})
	}
	return totals
}

func isoWeekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
