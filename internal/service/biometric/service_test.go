package biometric

import (
	"context"
	"testing"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
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

const importCSV = `Name,No.,Date/Time,Status
Ana,1,24/11/2025 8:00:00 AM,C/In
Ana,1,24/11/2025 5:00:00 PM,C/Out
broken row,not-a-number,whenever,C/In
`

func TestImportCSV_Replace(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewLogService(nil, repo)

	result, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{
		CSVText:  importCSV,
		FileName: "export.csv",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, "export.csv", result.FileName)
	assert.Equal(t, biometric.ImportModeReplace, result.Mode)
	assert.Equal(t, 2, result.RowsImported)
	assert.Equal(t, 1, result.RowsSkipped)
	assert.Equal(t, int64(2), result.TotalLogs)

	// A second replace import discards the first batch.
	result, err = svc.ImportCSV(context.Background(), biometric.ImportRequest{
		CSVText: importCSV,
		Mode:    biometric.ImportModeReplace,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), result.TotalLogs)
}

func TestImportCSV_Append(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewLogService(nil, repo)

	_, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{CSVText: importCSV})
	require.NoError(t, err)

	result, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{
		CSVText: importCSV,
		Mode:    biometric.ImportModeAppend,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.TotalLogs)
}

func TestImportCSV_Validation(t *testing.T) {
	svc := NewLogService(nil, &fakeLogRepo{})

	_, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{})
	assert.Error(t, err)

	_, err = svc.ImportCSV(context.Background(), biometric.ImportRequest{
		CSVText: importCSV,
		Mode:    "merge",
	})
	assert.Error(t, err)
}

func TestListLogs_NewestFirstAndPaged(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewLogService(nil, repo)

	_, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{CSVText: importCSV})
	require.NoError(t, err)

	result, err := svc.ListLogs(context.Background(), biometric.LogFilter{})
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.TotalCount)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 50, result.Limit)
	assert.Equal(t, 1, result.TotalPages)
	require.Len(t, result.Logs, 2)

	// Newest first.
	assert.Equal(t, biometric.StatusClockOut, result.Logs[0].Status)
	assert.Equal(t, biometric.StatusClockIn, result.Logs[1].Status)

	// Page past the end is empty, not an error.
	result, err = svc.ListLogs(context.Background(), biometric.LogFilter{Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, result.Logs)
	assert.Equal(t, int64(2), result.TotalCount)
}

func TestListLogs_FilterByEmployee(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewLogService(nil, repo)

	csvText := `Name,No.,Date/Time,Status
Ana,1,24/11/2025 8:00:00 AM,C/In
Bob,2,24/11/2025 9:00:00 AM,C/In
`
	_, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{CSVText: csvText})
	require.NoError(t, err)

	bob := 2
	result, err := svc.ListLogs(context.Background(), biometric.LogFilter{EmployeeNo: &bob})
	require.NoError(t, err)
	require.Len(t, result.Logs, 1)
	assert.Equal(t, 2, result.Logs[0].EmployeeNo)
}

func TestListEmployees(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewLogService(nil, repo)

	_, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{CSVText: importCSV})
	require.NoError(t, err)

	employees, err := svc.ListEmployees(context.Background())
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Ana", employees[0].Name)
	assert.Equal(t, 2, employees[0].TotalLogs)
}

func TestClearLogs(t *testing.T) {
	repo := &fakeLogRepo{}
	svc := NewLogService(nil, repo)

	_, err := svc.ImportCSV(context.Background(), biometric.ImportRequest{CSVText: importCSV})
	require.NoError(t, err)

	require.NoError(t, svc.ClearLogs(context.Background()))

	result, err := svc.ListLogs(context.Background(), biometric.LogFilter{})
	require.NoError(t, err)
	assert.Zero(t, result.TotalCount)
}
