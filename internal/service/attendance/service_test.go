package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/attendance"
	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLogRepo struct {
	events []biometric.LogEvent
}

func (f *fakeLogRepo) InsertBatch(_ context.Context, events []biometric.LogEvent, _ string) error {
	f.events = append(f.events, events...)
	return nil
}

func (f *fakeLogRepo) ListAll(_ context.Context) ([]biometric.LogEvent, error) {
	return f.events, nil
}

func (f *fakeLogRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.events)), nil
}

func (f *fakeLogRepo) DeleteAll(_ context.Context) error {
	f.events = nil
	return nil
}

type fakeSettingsRepo struct {
	stored *settings.WorkSettings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.WorkSettings, error) {
	if f.stored == nil {
		return settings.Default(), nil
	}
	return *f.stored, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s settings.WorkSettings) error {
	f.stored = &s
	return nil
}

func punch(no int, name string, at time.Time, status biometric.Status) biometric.LogEvent {
	return biometric.LogEvent{
		ID:         "test",
		Name:       name,
		EmployeeNo: no,
		EventTime:  at,
		Status:     status,
	}
}

var monday = time.Date(2025, time.November, 24, 0, 0, 0, 0, time.Local)

func seededService(events ...biometric.LogEvent) attendance.AttendanceService {
	return NewAttendanceService(&fakeLogRepo{events: events}, &fakeSettingsRepo{})
}

func TestList(t *testing.T) {
	svc := seededService(
		punch(1, "Ana", monday.Add(8*time.Hour), biometric.StatusClockIn),
		punch(1, "Ana", monday.Add(12*time.Hour), biometric.StatusBreakOut),
		punch(1, "Ana", monday.Add(13*time.Hour), biometric.StatusBreakBack),
		punch(1, "Ana", monday.Add(18*time.Hour), biometric.StatusClockOut),
	)

	result, err := svc.List(context.Background(), attendance.AttendanceFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)

	record := result.Records[0]
	assert.Equal(t, "2025-11-24", record.Date)
	assert.Equal(t, "Ana", record.EmployeeName)
	require.NotNil(t, record.ClockIn)
	assert.Equal(t, "08:00:00", *record.ClockIn)
	require.NotNil(t, record.ClockOut)
	assert.Equal(t, "18:00:00", *record.ClockOut)
	assert.InDelta(t, 9, record.TotalHours, 1e-9)
	assert.False(t, record.IsLate)
	assert.True(t, record.IsFullDay)

	require.Len(t, record.Breaks, 1)
	assert.Equal(t, "12:00:00", record.Breaks[0].Start)
	assert.Equal(t, "13:00:00", record.Breaks[0].End)
	assert.Len(t, record.Logs, 4)
}

func TestList_DateFilters(t *testing.T) {
	tuesday := monday.AddDate(0, 0, 1)
	svc := seededService(
		punch(1, "Ana", monday.Add(8*time.Hour), biometric.StatusClockIn),
		punch(1, "Ana", monday.Add(17*time.Hour), biometric.StatusClockOut),
		punch(1, "Ana", tuesday.Add(8*time.Hour), biometric.StatusClockIn),
		punch(1, "Ana", tuesday.Add(17*time.Hour), biometric.StatusClockOut),
	)

	date := "2025-11-24"
	result, err := svc.List(context.Background(), attendance.AttendanceFilter{Date: &date})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "2025-11-24", result.Records[0].Date)

	start, end := "2025-11-25", "2025-11-30"
	result, err = svc.List(context.Background(), attendance.AttendanceFilter{StartDate: &start, EndDate: &end})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, "2025-11-25", result.Records[0].Date)
}

func TestList_EmployeeFilter(t *testing.T) {
	svc := seededService(
		punch(1, "Ana", monday.Add(8*time.Hour), biometric.StatusClockIn),
		punch(2, "Bob", monday.Add(9*time.Hour), biometric.StatusClockIn),
	)

	bob := 2
	result, err := svc.List(context.Background(), attendance.AttendanceFilter{EmployeeNo: &bob})
	require.NoError(t, err)
	require.Equal(t, 1, result.TotalCount)
	assert.Equal(t, 2, result.Records[0].EmployeeNo)
}

func TestList_InvalidFilter(t *testing.T) {
	svc := seededService()

	bad := "24-11-2025"
	_, err := svc.List(context.Background(), attendance.AttendanceFilter{Date: &bad})
	assert.Error(t, err)

	start, end := "2025-11-30", "2025-11-24"
	_, err = svc.List(context.Background(), attendance.AttendanceFilter{StartDate: &start, EndDate: &end})
	assert.Error(t, err)
}

func TestList_Empty(t *testing.T) {
	svc := seededService()

	result, err := svc.List(context.Background(), attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)
	assert.Empty(t, result.Records)
}
