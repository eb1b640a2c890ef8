package biometric

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/database"
)

type LogServiceImpl struct {
	db *database.DB
	biometric.LogRepository
}

func NewLogService(db *database.DB, logRepo biometric.LogRepository) biometric.LogService {
	return &LogServiceImpl{
		db:            db,
		LogRepository: logRepo,
	}
}

// ImportCSV implements biometric.LogService. Malformed rows are dropped
// silently and reported through RowsSkipped; only a structurally broken file
// fails the import.
func (s *LogServiceImpl) ImportCSV(ctx context.Context, req biometric.ImportRequest) (biometric.ImportResult, error) {
	if err := req.Validate(); err != nil {
		return biometric.ImportResult{}, err
	}

	events, err := biometric.ParseCSV(req.CSVText)
	if err != nil {
		return biometric.ImportResult{}, err
	}

	if req.Mode == biometric.ImportModeReplace {
		if err := s.LogRepository.DeleteAll(ctx); err != nil {
			return biometric.ImportResult{}, fmt.Errorf("failed to replace existing logs: %w", err)
		}
	}

	batchID := uuid.NewString()
	if err := s.LogRepository.InsertBatch(ctx, events, batchID); err != nil {
		return biometric.ImportResult{}, err
	}

	total, err := s.LogRepository.Count(ctx)
	if err != nil {
		return biometric.ImportResult{}, err
	}

	return biometric.ImportResult{
		BatchID:      batchID,
		FileName:     req.FileName,
		Mode:         req.Mode,
		RowsImported: len(events),
		RowsSkipped:  countDataRows(req.CSVText) - len(events),
		TotalLogs:    total,
	}, nil
}

// ListLogs implements biometric.LogService. Stored events are returned
// newest first.
func (s *LogServiceImpl) ListLogs(ctx context.Context, filter biometric.LogFilter) (biometric.ListLogsResponse, error) {
	if err := filter.Validate(); err != nil {
		return biometric.ListLogsResponse{}, err
	}

	events, err := s.LogRepository.ListAll(ctx)
	if err != nil {
		return biometric.ListLogsResponse{}, err
	}

	filtered := events
	if filter.EmployeeNo != nil {
		filtered = make([]biometric.LogEvent, 0, len(events))
		for _, event := range events {
			if event.EmployeeNo == *filter.EmployeeNo {
				filtered = append(filtered, event)
			}
		}
	}

	// Newest first for display.
	reversed := make([]biometric.LogEvent, len(filtered))
	for i, event := range filtered {
		reversed[len(filtered)-1-i] = event
	}

	totalCount := int64(len(reversed))
	totalPages := int((totalCount + int64(filter.Limit) - 1) / int64(filter.Limit))

	start := (filter.Page - 1) * filter.Limit
	if start > len(reversed) {
		start = len(reversed)
	}
	end := start + filter.Limit
	if end > len(reversed) {
		end = len(reversed)
	}

	return biometric.ListLogsResponse{
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
		Logs:       reversed[start:end],
	}, nil
}

// ListEmployees implements biometric.LogService.
func (s *LogServiceImpl) ListEmployees(ctx context.Context) ([]biometric.Employee, error) {
	events, err := s.LogRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return biometric.DeriveEmployees(events), nil
}

// ClearLogs implements biometric.LogService.
func (s *LogServiceImpl) ClearLogs(ctx context.Context) error {
	return s.LogRepository.DeleteAll(ctx)
}

// countDataRows counts data rows (header excluded) without validating them,
// so skipped rows can be reported. Structural errors return zero; the parse
// above has already surfaced them.
func countDataRows(csvText string) int {
	reader := csv.NewReader(strings.NewReader(csvText))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil || len(records) == 0 {
		return 0
	}
	return len(records) - 1
}
