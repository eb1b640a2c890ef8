package report

import (
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/attendance"
	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
)

// BuildEmployeeSummary folds the event list into the per-employee report.
// The per-employee average divides by ALL of that employee's records while
// the overall average considers per-day averages; the asymmetry mirrors how
// the dashboard computes its headline number and is kept on purpose.
func BuildEmployeeSummary(events []biometric.LogEvent, s settings.WorkSettings, now time.Time) EmployeeSummaryReport {
	employees := biometric.DeriveEmployees(events)
	daily := attendance.DeriveDaily(events, nil)

	byEmployee := make(map[int][]attendance.DailyAttendance)
	for _, record := range daily {
		byEmployee[record.EmployeeNo] = append(byEmployee[record.EmployeeNo], record)
	}

	rows := make([]EmployeeSummaryRow, 0, len(employees))
	for _, employee := range employees {
		records := byEmployee[employee.EmployeeNo]

		var totalHours, totalBreakMinutes float64
		var daysWorked, lateArrivals int
		for _, record := range records {
			totalHours += record.TotalHours
			if record.TotalHours > 0 {
				daysWorked++
			}
			if attendance.IsLate(record, s) {
				lateArrivals++
			}
			for _, b := range record.Breaks {
				totalBreakMinutes += b.DurationMinutes
			}
		}

		var avgHours float64
		if len(records) > 0 {
			avgHours = totalHours / float64(len(records))
		}

		rows = append(rows, EmployeeSummaryRow{
			EmployeeName:      employee.Name,
			EmployeeNo:        employee.EmployeeNo,
			DaysWorked:        daysWorked,
			TotalHours:        totalHours,
			AvgHours:          avgHours,
			LateArrivals:      lateArrivals,
			TotalBreakMinutes: totalBreakMinutes,
		})
	}

	workingDays := make(map[string]struct{})
	perDayHours := make(map[string]float64)
	perDayCount := make(map[string]int)
	for _, record := range daily {
		key := record.Date.Format("2006-01-02")
		workingDays[key] = struct{}{}
		perDayHours[key] += record.TotalHours
		perDayCount[key]++
	}

	var avgHoursPerDay, avgEmployeesPerDay float64
	if len(workingDays) > 0 {
		for key := range workingDays {
			avgHoursPerDay += perDayHours[key] / float64(perDayCount[key])
			avgEmployeesPerDay += float64(perDayCount[key])
		}
		avgHoursPerDay /= float64(len(workingDays))
		avgEmployeesPerDay /= float64(len(workingDays))
	}

	return EmployeeSummaryReport{
		GeneratedAt:        now.Format("2006-01-02 15:04:05"),
		TotalEmployees:     len(employees),
		TotalWorkingDays:   len(workingDays),
		AvgHoursPerDay:     avgHoursPerDay,
		AvgEmployeesPerDay: avgEmployeesPerDay,
		Rows:               rows,
	}
}
