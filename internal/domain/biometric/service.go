package biometric

import "context"

// LogService owns the raw punch event list: ingest, listing, and the derived
// employee roster.
type LogService interface {
	// ImportCSV parses an uploaded export and persists the surviving events.
	ImportCSV(ctx context.Context, req ImportRequest) (ImportResult, error)

	// ListLogs retrieves stored events, newest first, with pagination.
	ListLogs(ctx context.Context, filter LogFilter) (ListLogsResponse, error)

	// ListEmployees derives the employee roster from the full event list.
	ListEmployees(ctx context.Context) ([]Employee, error)

	// ClearLogs deletes every stored event.
	ClearLogs(ctx context.Context) error
}
