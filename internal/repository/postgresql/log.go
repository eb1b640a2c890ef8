package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/database"
)

type logRepository struct {
	db *database.DB
}

func NewLogRepository(db *database.DB) biometric.LogRepository {
	return &logRepository{db: db}
}

// InsertBatch implements biometric.LogRepository. Events are copied in the
// given order; the bigserial seq column preserves ingestion order for
// identical-timestamp tie-breaks.
func (r *logRepository) InsertBatch(ctx context.Context, events []biometric.LogEvent, batchID string) error {
	if len(events) == 0 {
		return nil
	}

	_, err := r.db.CopyFrom(
		ctx,
		pgx.Identifier{"biometric_logs"},
		[]string{"event_id", "employee_no", "name", "event_time", "status", "batch_id"},
		pgx.CopyFromSlice(len(events), func(i int) ([]interface{}, error) {
			e := events[i]
			return []interface{}{e.ID, e.EmployeeNo, e.Name, e.EventTime, string(e.Status), batchID}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert log batch: %w", err)
	}

	return nil
}

// ListAll implements biometric.LogRepository.
func (r *logRepository) ListAll(ctx context.Context) ([]biometric.LogEvent, error) {
	query := `
		SELECT event_id, employee_no, name, event_time, status
		FROM biometric_logs
		ORDER BY event_time, seq
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list logs: %w", err)
	}
	defer rows.Close()

	var events []biometric.LogEvent
	for rows.Next() {
		var event biometric.LogEvent
		var status string
		if err := rows.Scan(&event.ID, &event.EmployeeNo, &event.Name, &event.EventTime, &status); err != nil {
			return nil, fmt.Errorf("failed to scan log row: %w", err)
		}
		event.Status = biometric.Status(status)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log rows: %w", err)
	}

	return events, nil
}

// Count implements biometric.LogRepository.
func (r *logRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM biometric_logs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count logs: %w", err)
	}
	return count, nil
}

// DeleteAll implements biometric.LogRepository.
func (r *logRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM biometric_logs`); err != nil {
		return fmt.Errorf("failed to delete logs: %w", err)
	}
	return nil
}
