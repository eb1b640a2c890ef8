package biometric

import (
	"encoding/csv"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// Recognized header columns, matched case-insensitively after trimming.
const (
	columnName     = "name"
	columnNo       = "no."
	columnDateTime = "date/time"
	columnStatus   = "status"
)

// Terminal exports use "24/11/2025 7:59:43 AM" style timestamps: 1-or-2-digit
// day, month and hour, optional 12-hour meridiem suffix.
var dateTimeRegex = regexp.MustCompile(`(?i)(\d{1,2})/(\d{1,2})/(\d{4})\s+(\d{1,2}):(\d{2}):(\d{2})\s*(AM|PM)?`)

// ParseCSV parses raw biometric CSV text into a chronologically sorted event
// list. A header row is required. Malformed rows are dropped silently; only a
// structurally broken file fails the whole batch. Events with identical
// timestamps keep their relative file order.
func ParseCSV(csvText string) ([]LogEvent, error) {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCSV, err)
	}
	if len(records) == 0 {
		return []LogEvent{}, nil
	}

	columns := indexColumns(records[0])

	events := make([]LogEvent, 0, len(records)-1)
	for i, record := range records[1:] {
		name, ok := normalizeName(fieldAt(record, columns[columnName]))
		if !ok {
			continue
		}
		employeeNo, err := strconv.Atoi(strings.TrimSpace(fieldAt(record, columns[columnNo])))
		if err != nil || employeeNo < 0 {
			continue
		}
		eventTime, ok := parseDateTime(fieldAt(record, columns[columnDateTime]))
		if !ok {
			continue
		}
		status, ok := normalizeStatus(fieldAt(record, columns[columnStatus]))
		if !ok {
			continue
		}

		events = append(events, LogEvent{
			ID:         fmt.Sprintf("%d-%d-%d", employeeNo, eventTime.UnixMilli(), i),
			Name:       name,
			EmployeeNo: employeeNo,
			EventTime:  eventTime,
			Status:     status,
		})
	}

	sort.SliceStable(events, func(a, b int) bool {
		return events[a].EventTime.Before(events[b].EventTime)
	})

	return events, nil
}

func indexColumns(header []string) map[string]int {
	columns := map[string]int{
		columnName:     -1,
		columnNo:       -1,
		columnDateTime: -1,
		columnStatus:   -1,
	}
	for i, field := range header {
		key := strings.ToLower(strings.TrimSpace(field))
		if _, recognized := columns[key]; recognized {
			columns[key] = i
		}
	}
	return columns
}

func fieldAt(record []string, index int) string {
	if index < 0 || index >= len(record) {
		return ""
	}
	return record[index]
}

// parseDateTime parses "D/M/YYYY H:MM:SS" with an optional AM/PM suffix into
// a local-frame time. No timezone conversion is applied.
func parseDateTime(s string) (time.Time, bool) {
	parts := dateTimeRegex.FindStringSubmatch(s)
	if parts == nil {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(parts[1])
	month, _ := strconv.Atoi(parts[2])
	year, _ := strconv.Atoi(parts[3])
	hour, _ := strconv.Atoi(parts[4])
	minute, _ := strconv.Atoi(parts[5])
	second, _ := strconv.Atoi(parts[6])

	// Without a meridiem suffix the hour is taken as 24-hour form.
	switch strings.ToUpper(parts[7]) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local), true
}

// normalizeStatus accepts only the exact four-status vocabulary after
// trimming.
func normalizeStatus(s string) (Status, bool) {
	switch Status(strings.TrimSpace(s)) {
	case StatusClockIn:
		return StatusClockIn, true
	case StatusClockOut:
		return StatusClockOut, true
	case StatusBreakOut:
		return StatusBreakOut, true
	case StatusBreakBack:
		return StatusBreakBack, true
	}
	return "", false
}

// normalizeName lower-cases the whole name and upper-cases only its first
// character, so "JOHN smith" becomes "John smith", not "John Smith".
func normalizeName(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	lowered := []rune(strings.ToLower(trimmed))
	lowered[0] = unicode.ToUpper(lowered[0])
	return string(lowered), true
}
