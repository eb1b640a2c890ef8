package report

import (
	"testing"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var monday = time.Date(2025, time.November, 24, 0, 0, 0, 0, time.Local)

func punch(no int, name string, at time.Time, status biometric.Status) biometric.LogEvent {
	return biometric.LogEvent{
		ID:         "test",
		Name:       name,
		EmployeeNo: no,
		EventTime:  at,
		Status:     status,
	}
}

func TestBuildEmployeeSummary(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)

	events := []biometric.LogEvent{
		// Ana: one 8h day, one in-only day.
		punch(1, "Ana", monday.Add(8*time.Hour), biometric.StatusClockIn),
		punch(1, "Ana", monday.Add(16*time.Hour), biometric.StatusClockOut),
		punch(1, "Ana", tuesday.Add(8*time.Hour), biometric.StatusClockIn),
		// Bob: one 6h day with a 1h break, clocked in late.
		punch(2, "Bob", monday.Add(10*time.Hour), biometric.StatusClockIn),
		punch(2, "Bob", monday.Add(12*time.Hour), biometric.StatusBreakOut),
		punch(2, "Bob", monday.Add(13*time.Hour), biometric.StatusBreakBack),
		punch(2, "Bob", monday.Add(17*time.Hour), biometric.StatusClockOut),
	}

	now := tuesday.Add(12 * time.Hour)
	summary := BuildEmployeeSummary(events, settings.Default(), now)

	assert.Equal(t, now.Format("2006-01-02 15:04:05"), summary.GeneratedAt)
	assert.Equal(t, 2, summary.TotalEmployees)
	assert.Equal(t, 2, summary.TotalWorkingDays)
	require.Len(t, summary.Rows, 2)

	ana := summary.Rows[0]
	assert.Equal(t, "Ana", ana.EmployeeName)
	assert.Equal(t, 1, ana.DaysWorked) // in-only day has zero hours
	assert.InDelta(t, 8, ana.TotalHours, 1e-9)
	// The per-employee average divides by all records, zero-hour days
	// included.
	assert.InDelta(t, 4, ana.AvgHours, 1e-9)
	assert.Zero(t, ana.LateArrivals)
	assert.Zero(t, ana.TotalBreakMinutes)

	bob := summary.Rows[1]
	assert.Equal(t, "Bob", bob.EmployeeName)
	assert.Equal(t, 1, bob.DaysWorked)
	assert.InDelta(t, 6, bob.TotalHours, 1e-9)
	assert.InDelta(t, 6, bob.AvgHours, 1e-9)
	assert.Equal(t, 1, bob.LateArrivals)
	assert.InDelta(t, 60, bob.TotalBreakMinutes, 1e-9)

	// Monday averages (8+6)/2 = 7, tuesday averages 0; overall (7+0)/2.
	assert.InDelta(t, 3.5, summary.AvgHoursPerDay, 1e-9)
	// Two records monday, one tuesday.
	assert.InDelta(t, 1.5, summary.AvgEmployeesPerDay, 1e-9)
}

func TestBuildEmployeeSummary_Empty(t *testing.T) {
	now := time.Date(2025, time.December, 1, 9, 0, 0, 0, time.Local)
	summary := BuildEmployeeSummary(nil, settings.Default(), now)

	assert.Zero(t, summary.TotalEmployees)
	assert.Zero(t, summary.TotalWorkingDays)
	assert.Zero(t, summary.AvgHoursPerDay)
	assert.Zero(t, summary.AvgEmployeesPerDay)
	assert.Empty(t, summary.Rows)
}
