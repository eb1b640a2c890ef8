package attendance

import (
	"sort"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
)

type dayKey struct {
	employeeNo int
	year       int
	month      time.Month
	day        int
}

// DeriveDaily groups a chronologically sorted event list into one
// DailyAttendance per (employee, calendar day), optionally filtered to a
// single employee number. Result groups are sorted most recent day first; no
// ordering is guaranteed between employees on the same date.
func DeriveDaily(events []biometric.LogEvent, employeeNo *int) []DailyAttendance {
	groups := make(map[dayKey][]biometric.LogEvent)
	for _, event := range events {
		if employeeNo != nil && event.EmployeeNo != *employeeNo {
			continue
		}
		key := dayKey{
			employeeNo: event.EmployeeNo,
			year:       event.EventTime.Year(),
			month:      event.EventTime.Month(),
			day:        event.EventTime.Day(),
		}
		groups[key] = append(groups[key], event)
	}

	records := make([]DailyAttendance, 0, len(groups))
	for _, dayLogs := range groups {
		records = append(records, deriveDay(dayLogs))
	}

	sort.SliceStable(records, func(a, b int) bool {
		return records[a].Date.After(records[b].Date)
	})

	return records
}

// deriveDay computes one attendance record from a single day's events, which
// inherit their chronological order from the parser.
func deriveDay(dayLogs []biometric.LogEvent) DailyAttendance {
	first := dayLogs[0]

	var clockIn, clockOut *time.Time
	for _, log := range dayLogs {
		if log.Status.IsInLike() {
			t := log.EventTime
			clockIn = &t
			break
		}
	}
	for i := len(dayLogs) - 1; i >= 0; i-- {
		if dayLogs[i].Status.IsOutLike() {
			t := dayLogs[i].EventTime
			clockOut = &t
			break
		}
	}

	// Any Out-like event directly followed by an In-like event counts as a
	// break, whichever of the four statuses is involved. The terminals mix
	// C/Out with Out Back in practice, so the pairing is deliberately loose.
	var breaks []BreakInterval
	var breakMinutes float64
	for i := 0; i < len(dayLogs)-1; i++ {
		current, next := dayLogs[i], dayLogs[i+1]
		if current.Status.IsOutLike() && next.Status.IsInLike() {
			duration := next.EventTime.Sub(current.EventTime).Minutes()
			breaks = append(breaks, BreakInterval{
				Start:           current.EventTime,
				End:             next.EventTime,
				DurationMinutes: duration,
			})
			breakMinutes += duration
		}
	}

	var totalHours float64
	if clockIn != nil && clockOut != nil {
		workedMinutes := clockOut.Sub(*clockIn).Minutes() - breakMinutes
		if workedMinutes < 0 {
			workedMinutes = 0
		}
		totalHours = workedMinutes / 60
	}

	date := time.Date(
		first.EventTime.Year(), first.EventTime.Month(), first.EventTime.Day(),
		0, 0, 0, 0, first.EventTime.Location(),
	)

	return DailyAttendance{
		Date:         date,
		EmployeeNo:   first.EmployeeNo,
		EmployeeName: first.Name,
		ClockIn:      clockIn,
		ClockOut:     clockOut,
		TotalHours:   totalHours,
		Breaks:       breaks,
		Logs:         dayLogs,
	}
}
