package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/dashboard"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDashboardRepo struct {
	employees   int64
	departments int64
	presence    dashboard.PresenceStats
	pending     int64
}

func (f *fakeDashboardRepo) CountEmployees(_ context.Context) (int64, error) {
	return f.employees, nil
}

func (f *fakeDashboardRepo) CountDepartments(_ context.Context) (int64, error) {
	return f.departments, nil
}

func (f *fakeDashboardRepo) GetPresenceStats(_ context.Context, _ time.Time) (*dashboard.PresenceStats, error) {
	stats := f.presence
	return &stats, nil
}

func (f *fakeDashboardRepo) CountPendingLeaves(_ context.Context) (int64, error) {
	return f.pending, nil
}

type fakeEmployeeRepo struct {
	recent []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}
func (f *fakeEmployeeRepo) GetByID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}
func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) { return nil, nil }
func (f *fakeEmployeeRepo) ListRecent(_ context.Context, limit int) ([]employee.Employee, error) {
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}
func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}
func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error { return nil }
func (f *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.recent)), nil
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestDashboardService_GetDashboard(t *testing.T) {
	repo := &fakeDashboardRepo{
		employees:   10,
		departments: 3,
		presence: dashboard.PresenceStats{
			Present:    7,
			AvgHours:   dec("7.5"),
			TotalHours: dec("52.5"),
		},
		pending: 2,
	}
	empRepo := &fakeEmployeeRepo{recent: []employee.Employee{
		{ID: "e1", Name: "Ada", Salary: dec("100"), HireDate: time.Now()},
		{ID: "e2", Name: "Grace", Salary: dec("120"), HireDate: time.Now()},
	}}

	svc := NewDashboardService(repo, empRepo)
	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), result.TotalEmployees)
	assert.Equal(t, int64(3), result.TotalDepartments)
	assert.Equal(t, int64(7), result.PresentToday)
	assert.Equal(t, float64(70), result.AttendanceRate)
	assert.Equal(t, "7.50", result.AvgHoursToday)
	assert.Equal(t, "52.50", result.TotalHoursToday)
	assert.Equal(t, int64(2), result.PendingLeaves)
	assert.Len(t, result.RecentEmployees, 2)
}

func TestDashboardService_GetDashboard_EmptyCompany(t *testing.T) {
	svc := NewDashboardService(&fakeDashboardRepo{}, &fakeEmployeeRepo{})

	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.TotalEmployees)
	assert.Equal(t, float64(0), result.AttendanceRate)
	assert.Equal(t, "0.00", result.AvgHoursToday)
	assert.Equal(t, "0.00", result.TotalHoursToday)
	assert.Empty(t, result.RecentEmployees)
}
