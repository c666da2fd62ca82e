package analytics

// MonthlyStats is the per-month attendance rollup for one employee.
type MonthlyStats struct {
	Month            string  `json:"month"` // YYYY-MM
	DaysWorked       int     `json:"days_worked"`
	TotalHoursWorked float64 `json:"total_hours_worked"`
	AverageWorkHours float64 `json:"average_work_hours"`
	LateDays         int     `json:"late_days"`
}

// PeriodTotal is one bucket of summed working hours.
type PeriodTotal struct {
	Period string  `json:"period"`
	Hours  float64 `json:"hours"`
}

// HistoryAnalytics groups all completed sessions by calendar year, month,
// ISO week and day. MonthlySeries repeats the monthly buckets oldest-first
// for charting.
type HistoryAnalytics struct {
	Yearly        []PeriodTotal `json:"yearly"`
	Monthly       []PeriodTotal `json:"monthly"`
	Weekly        []PeriodTotal `json:"weekly"`
	Daily         []PeriodTotal `json:"daily"`
	MonthlySeries []PeriodTotal `json:"monthly_series"`
}
