package attendance

import (
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
)

// BreakInterval is one detected Out-like to In-like transition within a
// day's events. Start is always before End.
type BreakInterval struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes float64   `json:"duration_minutes"`
}

// DailyAttendance is a derived aggregate, one per (employee, calendar day)
// pair present in the event list. It owns its data outright; nothing points
// back into engine state.
type DailyAttendance struct {
	Date         time.Time            `json:"date"` // midnight, local frame
	EmployeeNo   int                  `json:"employee_no"`
	EmployeeName string               `json:"employee_name"`
	ClockIn      *time.Time           `json:"clock_in"`
	ClockOut     *time.Time           `json:"clock_out"`
	TotalHours   float64              `json:"total_hours"`
	Breaks       []BreakInterval      `json:"breaks"`
	Logs         []biometric.LogEvent `json:"logs"` // retained for audit/display
}
