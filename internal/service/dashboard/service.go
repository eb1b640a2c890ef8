package dashboard

import (
	"context"
	"time"

	"github.com/punchlog/punchlog-backend-go/internal/domain/biometric"
	"github.com/punchlog/punchlog-backend-go/internal/domain/dashboard"
	"github.com/punchlog/punchlog-backend-go/internal/domain/settings"
)

type DashboardServiceImpl struct {
	biometric.LogRepository
	settings.SettingsRepository

	// now is injected so the "present today" count stays testable.
	now func() time.Time
}

func NewDashboardService(logRepo biometric.LogRepository, settingsRepo settings.SettingsRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		LogRepository:      logRepo,
		SettingsRepository: settingsRepo,
		now:                time.Now,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (dashboard.DashboardResponse, error) {
	events, err := s.LogRepository.ListAll(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	workSettings, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		return dashboard.DashboardResponse{}, err
	}

	return dashboard.DashboardResponse{
		Stats:       dashboard.DeriveStats(events, workSettings, s.now()),
		HoursPerDay: dashboard.DeriveHoursPerDay(events),
	}, nil
}
