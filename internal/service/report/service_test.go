package report

import (
	"context"
	"strings"
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

func testService(events ...biometric.LogEvent) *ReportServiceImpl {
	return &ReportServiceImpl{
		LogRepository:      &fakeLogRepo{events: events},
		SettingsRepository: &fakeSettingsRepo{},
		now:                func() time.Time { return monday.Add(20 * time.Hour) },
	}
}

func TestGetEmployeeSummary(t *testing.T) {
	svc := testService(
		punch(1, "Ana", monday.Add(8*time.Hour), biometric.StatusClockIn),
		punch(1, "Ana", monday.Add(17*time.Hour), biometric.StatusClockOut),
	)

	summary, err := svc.GetEmployeeSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2025-11-24 20:00:00", summary.GeneratedAt)
	assert.Equal(t, 1, summary.TotalEmployees)
	require.Len(t, summary.Rows, 1)
	assert.Equal(t, "Ana", summary.Rows[0].EmployeeName)
	assert.InDelta(t, 9, summary.Rows[0].TotalHours, 1e-9)
}

func TestExportEmployeeSummaryCSV(t *testing.T) {
	svc := testService(
		punch(1, "Ana", monday.Add(8*time.Hour), biometric.StatusClockIn),
		punch(1, "Ana", monday.Add(17*time.Hour), biometric.StatusClockOut),
	)

	content, err := svc.ExportEmployeeSummaryCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t, "Employee Name,Employee No,Days Worked,Total Hours,Avg Hours/Day,Late Arrivals,Total Break Time (min)", lines[0])
	assert.Equal(t, "Ana,1,1,9.00,9.00,0,0", lines[1])
}

func TestExportEmployeeSummaryCSV_Empty(t *testing.T) {
	svc := testService()

	content, err := svc.ExportEmployeeSummaryCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 1) // header only
}
