package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/attendance"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance // keyed by id
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == att.EmployeeID && existing.WorkDate.Equal(att.WorkDate) {
			return attendance.Attendance{}, attendance.ErrDuplicateForDay
		}
	}
	copied := att
	f.records[att.ID] = &copied
	return copied, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	att, ok := f.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *att, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, workDate time.Time) (*attendance.Attendance, error) {
	for _, att := range f.records {
		if att.EmployeeID == employeeID && att.WorkDate.Equal(workDate) {
			copied := *att
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetOrCreateForDay(ctx context.Context, employeeID string, workDate time.Time) (attendance.Attendance, error) {
	if att, _ := f.GetByEmployeeAndDate(ctx, employeeID, workDate); att != nil {
		return *att, nil
	}
	att := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		WorkDate:   workDate,
	}
	f.records[att.ID] = &att
	return att, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		out = append(out, *att)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, workDate time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, att := range f.records {
		if att.WorkDate.Equal(workDate) {
			out = append(out, *att)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) error {
	if _, ok := f.records[att.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	copied := att
	f.records[att.ID] = &copied
	return nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	delete(f.records, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	f := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		f.employees[id] = employee.Employee{ID: id, Name: "Employee " + id}
	}
	return f
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListRecent(ctx context.Context, limit int) ([]employee.Employee, error) {
	out, _ := f.List(ctx)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, req employee.UpdateEmployeeRequest) error {
	if _, ok := f.employees[req.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

func TestAttendanceService_ClockIn_FirstTime(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	result, err := svc.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	assert.False(t, result.AlreadySet)
	assert.NotNil(t, result.Attendance.CheckIn)
	assert.Equal(t, "emp-1", result.Attendance.EmployeeID)
	assert.Equal(t, time.Now().Format("2006-01-02"), result.Attendance.WorkDate)
}

func TestAttendanceService_ClockIn_SecondTimeIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	first, err := svc.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	second, err := svc.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	assert.True(t, second.AlreadySet)
	assert.Equal(t, first.Attendance.CheckIn, second.Attendance.CheckIn)
}

func TestAttendanceService_ClockIn_UnknownEmployee(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	_, err := svc.ClockIn(ctx, "ghost")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestAttendanceService_ClockOut_WithoutClockIn(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	_, err := svc.ClockOut(ctx, "emp-1")
	assert.ErrorIs(t, err, attendance.ErrNotClockedIn)
}

func TestAttendanceService_ClockOut_RowWithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo("emp-1"))

	// An admin-created row for today with no check-in. Clock-out still
	// stamps check-out; only a missing row is a not-found condition.
	repo.records["att-1"] = &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		WorkDate:   dateOf(time.Now()),
	}

	result, err := svc.ClockOut(ctx, "emp-1")
	require.NoError(t, err)

	assert.False(t, result.AlreadySet)
	assert.NotNil(t, result.Attendance.CheckOut)
	assert.Nil(t, result.Attendance.CheckIn)
	assert.Equal(t, "0.00", result.Attendance.WorkedHours)
}

func TestAttendanceService_ClockOut_ComputesHours(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo("emp-1"))

	_, err := svc.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	// Backdate the check-in so the computed duration is non-trivial.
	for _, att := range repo.records {
		earlier := att.CheckIn.Add(-2 * time.Hour)
		att.CheckIn = &earlier
	}

	result, err := svc.ClockOut(ctx, "emp-1")
	require.NoError(t, err)

	assert.False(t, result.AlreadySet)
	assert.NotNil(t, result.Attendance.CheckOut)
	assert.Equal(t, "2.00", result.Attendance.WorkedHours)
}

func TestAttendanceService_ClockOut_SecondTimeIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	_, err := svc.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	first, err := svc.ClockOut(ctx, "emp-1")
	require.NoError(t, err)

	second, err := svc.ClockOut(ctx, "emp-1")
	require.NoError(t, err)

	assert.True(t, second.AlreadySet)
	assert.Equal(t, first.Attendance.CheckOut, second.Attendance.CheckOut)
}

func TestAttendanceService_CreateAttendance_DuplicateDay(t *testing.T) {
	ctx := context.Background()
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo("emp-1"))

	date := "2025-03-10"
	_, err := svc.CreateAttendance(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		WorkDate:   &date,
	})
	require.NoError(t, err)

	_, err = svc.CreateAttendance(ctx, attendance.CreateAttendanceRequest{
		EmployeeID: "emp-1",
		WorkDate:   &date,
	})
	assert.ErrorIs(t, err, attendance.ErrDuplicateForDay)
}

func TestAttendanceService_TodayOverview(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo("emp-1", "emp-2"))

	_, err := svc.ClockIn(ctx, "emp-1")
	require.NoError(t, err)

	overview, err := svc.TodayOverview(ctx)
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), overview.Date)
	assert.Len(t, overview.Records, 1)
	assert.Equal(t, float64(50), overview.AttendanceRate)
}
