package report

import "context"

type ReportService interface {
	// GetEmployeeSummary derives the per-employee attendance report.
	GetEmployeeSummary(ctx context.Context) (EmployeeSummaryReport, error)

	// ExportEmployeeSummaryCSV renders the report as a CSV document.
	ExportEmployeeSummaryCSV(ctx context.Context) ([]byte, error)
}
