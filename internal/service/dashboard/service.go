package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/attendance"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/dashboard"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	employeesvc "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/service/employee"
	"golang.org/x/sync/errgroup"
)

// recentEmployeeLimit caps the recent-hires list on the dashboard.
const recentEmployeeLimit = 5

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	employee.EmployeeRepository
}

func NewDashboardService(dashRepo dashboard.DashboardRepository, empRepo employee.EmployeeRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: dashRepo,
		EmployeeRepository:  empRepo,
	}
}

// GetDashboard fans the aggregate queries out in parallel; each goroutine
// runs a single query.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var (
		totalEmployees   int64
		totalDepartments int64
		presence         *dashboard.PresenceStats
		pendingLeaves    int64
		recent           []employee.Employee
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalEmployees, err = s.DashboardRepository.CountEmployees(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		totalDepartments, err = s.DashboardRepository.CountDepartments(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		presence, err = s.DashboardRepository.GetPresenceStats(gctx, today)
		return err
	})
	g.Go(func() error {
		var err error
		pendingLeaves, err = s.DashboardRepository.CountPendingLeaves(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.EmployeeRepository.ListRecent(gctx, recentEmployeeLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to build dashboard: %w", err)
	}

	recentResponses := make([]employee.EmployeeResponse, 0, len(recent))
	for _, emp := range recent {
		recentResponses = append(recentResponses, employeesvc.ToResponse(emp))
	}

	return &dashboard.DashboardResponse{
		TotalEmployees:   totalEmployees,
		TotalDepartments: totalDepartments,
		PresentToday:     presence.Present,
		AttendanceRate:   attendance.Rate(presence.Present, totalEmployees),
		AvgHoursToday:    presence.AvgHours.Round(2).StringFixed(2),
		TotalHoursToday:  presence.TotalHours.Round(2).StringFixed(2),
		PendingLeaves:    pendingLeaves,
		RecentEmployees:  recentResponses,
		GeneratedAt:      now.Format(time.RFC3339),
	}, nil
}
