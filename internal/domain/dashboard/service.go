package dashboard

import "context"

type DashboardService interface {
	// GetDashboard returns the combined summary for today.
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
