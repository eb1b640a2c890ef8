package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
	"github.com/punchlog/punchlog-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository. Defaults apply until settings
// are saved for the first time.
func (r *settingsRepository) Get(ctx context.Context) (settings.WorkSettings, error) {
	query := `
		SELECT work_start_time, work_end_time, late_threshold_minutes, min_hours_full_day
		FROM work_settings
		WHERE id
	`

	var s settings.WorkSettings
	err := r.db.QueryRow(ctx, query).Scan(
		&s.WorkStartTime, &s.WorkEndTime, &s.LateThresholdMinutes, &s.MinHoursFullDay,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Default(), nil
		}
		return settings.WorkSettings{}, fmt.Errorf("failed to get work settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s settings.WorkSettings) error {
	query := `
		INSERT INTO work_settings (id, work_start_time, work_end_time, late_threshold_minutes, min_hours_full_day, updated_at)
		VALUES (TRUE, $1, $2, $3, $4, NOW())
		ON CONFLICT (id) DO UPDATE SET
			work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			late_threshold_minutes = EXCLUDED.late_threshold_minutes,
			min_hours_full_day = EXCLUDED.min_hours_full_day,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		s.WorkStartTime, s.WorkEndTime, s.LateThresholdMinutes, s.MinHoursFullDay,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert work settings: %w", err)
	}

	return nil
}
