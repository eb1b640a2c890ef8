package report

// EmployeeSummaryReport is the per-employee attendance report rendered on
// the reports page and exported as CSV.
type EmployeeSummaryReport struct {
	GeneratedAt string `json:"generated_at"`

	TotalEmployees      int     `json:"total_employees"`
	TotalWorkingDays    int     `json:"total_working_days"`
	AvgHoursPerDay      float64 `json:"avg_hours_per_day"`
	AvgEmployeesPerDay  float64 `json:"avg_employees_per_day"`

	Rows []EmployeeSummaryRow `json:"rows"`
}

type EmployeeSummaryRow struct {
	EmployeeName string `json:"employee_name"`
	EmployeeNo   int    `json:"employee_no"`

	DaysWorked int     `json:"days_worked"`
	TotalHours float64 `json:"total_hours"`
	// AvgHours averages over all of the employee's records, worked or not.
	AvgHours          float64 `json:"avg_hours"`
	LateArrivals      int     `json:"late_arrivals"`
	TotalBreakMinutes float64 `json:"total_break_minutes"`
}
