package settings

import (
	"strconv"
	"strings"
)

// WorkSettings configures classification of attendance records (late,
// full-day). It never affects how worked hours themselves are computed.
type WorkSettings struct {
	WorkStartTime        string  `json:"work_start_time"` // HH:mm
	WorkEndTime          string  `json:"work_end_time"`   // HH:mm
	LateThresholdMinutes int     `json:"late_threshold_minutes"`
	MinHoursFullDay      float64 `json:"min_hours_full_day"`
}

// Default returns the out-of-the-box settings.
func Default() WorkSettings {
	return WorkSettings{
		WorkStartTime:        "08:00",
		WorkEndTime:          "17:45",
		LateThresholdMinutes: 15,
		MinHoursFullDay:      9,
	}
}

// MinutesOfDay converts an "HH:mm" string to minutes since midnight. The
// caller is expected to have validated the format.
func MinutesOfDay(hhmm string) int {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}
