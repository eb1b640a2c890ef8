package attendance

import (
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
)

// IsLate reports whether the record's clock-in falls after the configured
// start time plus the late threshold. A missing clock-in is never late.
func IsLate(record DailyAttendance, s settings.WorkSettings) bool {
	if record.ClockIn == nil {
		return false
	}
	clockInMinutes := record.ClockIn.Hour()*60 + record.ClockIn.Minute()
	return clockInMinutes > settings.MinutesOfDay(s.WorkStartTime)+s.LateThresholdMinutes
}

// IsFullDay reports whether the record meets the configured minimum worked
// hours for a full day.
func IsFullDay(record DailyAttendance, s settings.WorkSettings) bool {
	return record.TotalHours >= s.MinHoursFullDay
}
