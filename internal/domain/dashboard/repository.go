package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PresenceStats combines the per-day attendance aggregates in a single query.
type PresenceStats struct {
	Present    int64
	AvgHours   decimal.Decimal
	TotalHours decimal.Decimal
}

type DashboardRepository interface {
	// CountEmployees and CountDepartments back the headline counters.
	CountEmployees(ctx context.Context) (int64, error)
	CountDepartments(ctx context.Context) (int64, error)

	// GetPresenceStats returns distinct present employees plus the hour
	// aggregates for a single work date.
	GetPresenceStats(ctx context.Context, date time.Time) (*PresenceStats, error)

	CountPendingLeaves(ctx context.Context) (int64, error)
}
