package dashboard

import "context"

type DashboardService interface {
	// GetDashboard returns the combined dashboard payload.
	GetDashboard(ctx context.Context) (DashboardResponse, error)
}
