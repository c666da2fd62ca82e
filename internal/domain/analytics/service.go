package analytics

import (
	"context"
	"time"
)

// AnalyticsService derives read-only rollups from stored attendance
// sessions. No side effects; empty input yields zeroed outputs.
type AnalyticsService interface {
	// MonthlyStats aggregates the employee's completed sessions whose
	// check-in falls within month's calendar month.
	MonthlyStats(ctx context.Context, employeeID string, month time.Time) (MonthlyStats, error)

	// FullHistory buckets all of the employee's completed sessions by
	// year, month, ISO week and day.
	FullHistory(ctx context.Context, employeeID string) (HistoryAnalytics, error)
}
