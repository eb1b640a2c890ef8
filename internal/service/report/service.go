package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/domain/report"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
)

type ReportServiceImpl struct {
	biometric.LogRepository
	settings.SettingsRepository

	now func() time.Time
}

func NewReportService(logRepo biometric.LogRepository, settingsRepo settings.SettingsRepository) report.ReportService {
	return &ReportServiceImpl{
		LogRepository:      logRepo,
		SettingsRepository: settingsRepo,
		now:                time.Now,
	}
}

// GetEmployeeSummary implements report.ReportService.
func (s *ReportServiceImpl) GetEmployeeSummary(ctx context.Context) (report.EmployeeSummaryReport, error) {
	events, err := s.LogRepository.ListAll(ctx)
	if err != nil {
		return report.EmployeeSummaryReport{}, err
	}

	workSettings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return report.EmployeeSummaryReport{}, err
	}

	return report.BuildEmployeeSummary(events, workSettings, s.now()), nil
}

// ExportEmployeeSummaryCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportEmployeeSummaryCSV(ctx context.Context) ([]byte, error) {
	summary, err := s.GetEmployeeSummary(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{
		"Employee Name", "Employee No", "Days Worked",
		"Total Hours", "Avg Hours/Day", "Late Arrivals", "Total Break Time (min)",
	}
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, row := range summary.Rows {
		record := []string{
			row.EmployeeName,
			strconv.Itoa(row.EmployeeNo),
			strconv.Itoa(row.DaysWorked),
			strconv.FormatFloat(row.TotalHours, 'f', 2, 64),
			strconv.FormatFloat(row.AvgHours, 'f', 2, 64),
			strconv.Itoa(row.LateArrivals),
			strconv.FormatFloat(row.TotalBreakMinutes, 'f', 0, 64),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write report row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}

	return buf.Bytes(), nil
}
