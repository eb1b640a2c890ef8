package settings

import (
	"context"

	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.WorkSettings, error) {
	return s.SettingsRepository.Get(ctx)
}

// Update implements settings.SettingsService. Unset fields keep their
// current value.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.WorkSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.WorkSettings{}, err
	}

	current, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return settings.WorkSettings{}, err
	}

	updated := req.Apply(current)
	if err := s.SettingsRepository.Upsert(ctx, updated); err != nil {
		return settings.WorkSettings{}, err
	}

	return updated, nil
}
