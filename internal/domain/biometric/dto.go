package biometric

import (
	"github.com/punchlog/punchlog-backend-go/internal/pkg/validator"
)

// ImportRequest carries one uploaded CSV export. Mode "replace" drops the
// existing event list first; "append" keeps it.
type ImportRequest struct {
	CSVText  string `json:"-"`
	FileName string `json:"-"`
	Mode     string `json:"mode"`
}

const (
	ImportModeReplace = "replace"
	ImportModeAppend  = "append"
)

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.CSVText == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "CSV content is required",
		})
	}

	if r.Mode == "" {
		r.Mode = ImportModeReplace
	}
	if r.Mode != ImportModeReplace && r.Mode != ImportModeAppend {
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be one of: replace, append",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ImportResult reports what an upload produced. RowsSkipped counts data rows
// the parser rejected silently.
type ImportResult struct {
	BatchID      string `json:"batch_id"`
	FileName     string `json:"file_name,omitempty"`
	Mode         string `json:"mode"`
	RowsImported int    `json:"rows_imported"`
	RowsSkipped  int    `json:"rows_skipped"`
	TotalLogs    int64  `json:"total_logs"`
}

type LogFilter struct {
	EmployeeNo *int `json:"employee_no,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *LogFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 50 // Default limit
	}
	if f.Limit > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 500",
		})
	}

	if f.EmployeeNo != nil && *f.EmployeeNo < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_no",
			Message: "employee_no must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListLogsResponse struct {
	TotalCount int64      `json:"total_count"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"total_pages"`
	Logs       []LogEvent `json:"logs"`
}
