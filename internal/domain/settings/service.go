package settings

import "context"

type SettingsService interface {
	// Get returns the effective work settings.
	Get(ctx context.Context) (WorkSettings, error)

	// Update applies a partial update and returns the new settings.
	Update(ctx context.Context, req UpdateSettingsRequest) (WorkSettings, error)
}
