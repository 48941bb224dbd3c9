package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/dashboard"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/leave"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return count, nil
}

func (r *dashboardRepositoryImpl) CountDepartments(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count departments: %w", err)
	}
	return count, nil
}

// GetPresenceStats collects present headcount and hour aggregates for one
// work date in a single query. COALESCE keeps an empty day at zero instead
// of NULL.
func (r *dashboardRepositoryImpl) GetPresenceStats(ctx context.Context, date time.Time) (*dashboard.PresenceStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(DISTINCT employee_id) FILTER (WHERE check_in IS NOT NULL) AS present,
			COALESCE(AVG(worked_hours), 0) AS avg_hours,
			COALESCE(SUM(worked_hours), 0) AS total_hours
		FROM attendance
		WHERE work_date = $1
	`

	var stats dashboard.PresenceStats
	err := q.QueryRow(ctx, query, date).Scan(&stats.Present, &stats.AvgHours, &stats.TotalHours)
	if err != nil {
		return nil, fmt.Errorf("get presence stats: %w", err)
	}

	return &stats, nil
}

func (r *dashboardRepositoryImpl) CountPendingLeaves(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, leave.StatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending leaves: %w", err)
	}
	return count, nil
}
