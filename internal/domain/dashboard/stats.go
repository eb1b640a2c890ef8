package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/attendance"
	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
)

// DeriveStats folds the full event list into whole-dataset summary numbers.
// The caller injects now so that the "present today" count and the empty
// date-range fallback stay reproducible.
func DeriveStats(events []biometric.LogEvent, s settings.WorkSettings, now time.Time) SummaryStats {
	employees := biometric.DeriveEmployees(events)
	daily := attendance.DeriveDaily(events, nil)

	// The global average counts only days with positive worked hours. The
	// per-employee report averages over all days instead; the two formulas
	// are intentionally different.
	var validDays int
	var validHours float64
	var lateArrivals int
	for _, record := range daily {
		if record.TotalHours > 0 {
			validDays++
			validHours += record.TotalHours
		}
		if attendance.IsLate(record, s) {
			lateArrivals++
		}
	}
	var averageWorkHours float64
	if validDays > 0 {
		averageWorkHours = roundTenth(validHours / float64(validDays))
	}

	rangeStart, rangeEnd := now, now
	if len(events) > 0 {
		rangeStart, rangeEnd = events[0].EventTime, events[0].EventTime
		for _, event := range events[1:] {
			if event.EventTime.Before(rangeStart) {
				rangeStart = event.EventTime
			}
			if event.EventTime.After(rangeEnd) {
				rangeEnd = event.EventTime
			}
		}
	}

	todayYear, todayMonth, todayDay := now.Date()
	presentToday := make(map[int]struct{})
	for _, event := range events {
		year, month, day := event.EventTime.Date()
		if year == todayYear && month == todayMonth && day == todayDay {
			presentToday[event.EmployeeNo] = struct{}{}
		}
	}

	return SummaryStats{
		TotalEmployees:   len(employees),
		TotalLogs:        len(events),
		AverageWorkHours: averageWorkHours,
		LateArrivals:     lateArrivals,
		TodayPresent:     len(presentToday),
		DateRange: Range{
			Start: rangeStart.Format("2006-01-02 15:04:05"),
			End:   rangeEnd.Format("2006-01-02 15:04:05"),
		},
	}
}

// DeriveHoursPerDay builds the chart series: per calendar day, the average
// worked hours across that day's attendance records and the number of
// employees with a record, ascending by date.
func DeriveHoursPerDay(events []biometric.LogEvent) []HoursPerDayPoint {
	daily := attendance.DeriveDaily(events, nil)

	grouped := make(map[string][]attendance.DailyAttendance)
	for _, record := range daily {
		key := record.Date.Format("2006-01-02")
		grouped[key] = append(grouped[key], record)
	}

	points := make([]HoursPerDayPoint, 0, len(grouped))
	for date, records := range grouped {
		var total float64
		for _, record := range records {
			total += record.TotalHours
		}
		points = append(points, HoursPerDayPoint{
			Date:      date,
			Hours:     roundTenth(total / float64(len(records))),
			Employees: len(records),
		})
	}

	sort.Slice(points, func(a, b int) bool {
		return points[a].Date < points[b].Date
	})

	return points
}

func roundTenth(x float64) float64 {
	return math.Round(x*10) / 10
}
