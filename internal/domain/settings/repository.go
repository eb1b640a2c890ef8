package settings

import "context"

// SettingsRepository persists the single work settings record.
type SettingsRepository interface {
	// Get returns the stored settings, or the defaults when none are stored.
	Get(ctx context.Context) (WorkSettings, error)

	// Upsert stores the settings record, replacing any existing one.
	Upsert(ctx context.Context, s WorkSettings) error
}
