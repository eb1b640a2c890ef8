package attendance

import (
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/validator"
)

type AttendanceFilter struct {
	EmployeeNo *int    `json:"employee_no,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeNo != nil && *f.EmployeeNo < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no must be a non-negative number",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	var startDate, endDate time.Time
	startValid, endValid := true, true
	if f.StartDate != nil && *f.StartDate != "" {
		if startDate, startValid = validator.IsValidDate(*f.StartDate); !startValid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if f.EndDate != nil && *f.EndDate != "" {
		if endDate, endValid = validator.IsValidDate(*f.EndDate); !endValid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}
	if startValid && endValid && !startDate.IsZero() && !endDate.IsZero() && startDate.After(endDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BreakResponse struct {
	Start           string  `json:"start"` // HH:MM:SS
	End             string  `json:"end"`   // HH:MM:SS
	DurationMinutes float64 `json:"duration_minutes"`
}

type DailyAttendanceResponse struct {
	Date         string               `json:"date"` // YYYY-MM-DD
	EmployeeNo   int                  `json:"employee_no"`
	EmployeeName string               `json:"employee_name"`
	ClockIn      *string              `json:"clock_in,omitempty"`  // HH:MM:SS
	ClockOut     *string              `json:"clock_out,omitempty"` // HH:MM:SS
	TotalHours   float64              `json:"total_hours"`
	IsLate       bool                 `json:"is_late"`
	IsFullDay    bool                 `json:"is_full_day"`
	Breaks       []BreakResponse      `json:"breaks"`
	Logs         []biometric.LogEvent `json:"logs"`
}

type ListAttendanceResponse struct {
	TotalCount int                       `json:"total_count"`
	Records    []DailyAttendanceResponse `json:"records"`
}
