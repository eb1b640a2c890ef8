package dashboard

// SummaryStats is the headline block of the dashboard: whole-dataset counts
// and averages derived from the full event list.
type SummaryStats struct {
	TotalEmployees   int     `json:"total_employees"`
	TotalLogs        int     `json:"total_logs"`
	AverageWorkHours float64 `json:"average_work_hours"` // over days with hours > 0
	LateArrivals     int     `json:"late_arrivals"`
	TodayPresent     int     `json:"today_present"`
	DateRange        Range   `json:"date_range"`
}

// Range spans the earliest and latest source event timestamps, not
// attendance dates.
type Range struct {
	Start string `json:"start"` // YYYY-MM-DD HH:MM:SS
	End   string `json:"end"`
}

// HoursPerDayPoint is one bar of the hours-worked chart: the average worked
// hours and attendance count for a single calendar day.
type HoursPerDayPoint struct {
	Date      string  `json:"date"` // YYYY-MM-DD
	Hours     float64 `json:"hours"`
	Employees int     `json:"employees"`
}

// DashboardResponse is the combined payload for the main dashboard endpoint.
type DashboardResponse struct {
	Stats       SummaryStats       `json:"stats"`
	HoursPerDay []HoursPerDayPoint `json:"hours_per_day"`
}
