package biometric

import "context"

// LogRepository persists raw punch events. Events are the only stored truth;
// every aggregate is recomputed from them on read.
type LogRepository interface {
	// InsertBatch appends events in the given order, tagged with the batch id.
	InsertBatch(ctx context.Context, events []LogEvent, batchID string) error

	// ListAll returns every event ordered by event time, then ingestion order.
	ListAll(ctx context.Context) ([]LogEvent, error)

	// Count returns the number of stored events.
	Count(ctx context.Context) (int64, error)

	// DeleteAll removes every stored event.
	DeleteAll(ctx context.Context) error
}
