package dashboard

import (
	"context"
	"testing"
	"time"

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

type fakeSettingsRepo struct{}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.WorkSettings, error) {
	return settings.Default(), nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, _ settings.WorkSettings) error {
	return nil
}

func TestGetDashboard(t *testing.T) {
	monday := time.Date(2025, time.November, 24, 0, 0, 0, 0, time.Local)
	events := []biometric.LogEvent{
		{ID: "a", Name: "Ana", EmployeeNo: 1, EventTime: monday.Add(8 * time.Hour), Status: biometric.StatusClockIn},
		{ID: "b", Name: "Ana", EmployeeNo: 1, EventTime: monday.Add(17 * time.Hour), Status: biometric.StatusClockOut},
	}

	svc := &DashboardServiceImpl{
		LogRepository:      &fakeLogRepo{events: events},
		SettingsRepository: &fakeSettingsRepo{},
		now:                func() time.Time { return monday.Add(12 * time.Hour) },
	}

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.TotalEmployees)
	assert.Equal(t, 2, result.Stats.TotalLogs)
	assert.InDelta(t, 9.0, result.Stats.AverageWorkHours, 1e-9)
	assert.Equal(t, 1, result.Stats.TodayPresent)

	require.Len(t, result.HoursPerDay, 1)
	assert.Equal(t, "2025-11-24", result.HoursPerDay[0].Date)
	assert.InDelta(t, 9.0, result.HoursPerDay[0].Hours, 1e-9)
	assert.Equal(t, 1, result.HoursPerDay[0].Employees)
}

func TestGetDashboard_Empty(t *testing.T) {
	now := time.Date(2025, time.December, 1, 10, 0, 0, 0, time.Local)
	svc := &DashboardServiceImpl{
		LogRepository:      &fakeLogRepo{},
		SettingsRepository: &fakeSettingsRepo{},
		now:                func() time.Time { return now },
	}

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.Stats.TotalEmployees)
	assert.Empty(t, result.HoursPerDay)
	assert.Equal(t, now.Format("2006-01-02 15:04:05"), result.Stats.DateRange.Start)
}
