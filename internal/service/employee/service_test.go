package employee

import (
	"context"
	"testing"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/department"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
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
	emp, ok := f.employees[req.ID]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.JobTitle != nil {
		emp.JobTitle = *req.JobTitle
	}
	f.employees[req.ID] = emp
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.employees)), nil
}

type fakeDepartmentRepo struct {
	departments map[string]department.Department
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{departments: make(map[string]department.Department)}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, dept department.Department) (department.Department, error) {
	f.departments[dept.ID] = dept
	return dept, nil
}

func (f *fakeDepartmentRepo) GetByID(_ context.Context, id string) (department.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return department.Department{}, department.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeDepartmentRepo) List(_ context.Context) ([]department.Department, error) {
	var out []department.Department
	for _, dept := range f.departments {
		out = append(out, dept)
	}
	return out, nil
}

func (f *fakeDepartmentRepo) Update(_ context.Context, req department.UpdateDepartmentRequest) error {
	if _, ok := f.departments[req.ID]; !ok {
		return department.ErrDepartmentNotFound
	}
	return nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, id string) error {
	delete(f.departments, id)
	return nil
}

func TestEmployeeService_CreateEmployee_TrimsNameAndTitle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, newFakeDepartmentRepo())

	result, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:     "  John Doe  ",
		Email:    "john@example.com",
		JobTitle: "  Engineer ",
		Salary:   "60000",
	})
	require.NoError(t, err)

	assert.Equal(t, "John Doe", result.Name)
	assert.Equal(t, "Engineer", result.JobTitle)

	stored := repo.employees[result.ID]
	assert.Equal(t, "John Doe", stored.Name)
	assert.Equal(t, "Engineer", stored.JobTitle)
}

func TestEmployeeService_CreateEmployee_DefaultsHireDateToToday(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, newFakeDepartmentRepo())

	result, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		JobTitle: "Engineer",
		Salary:   "150000.00",
	})
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), result.HireDate)
}

func TestEmployeeService_CreateEmployee_UnknownDepartment(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(newFakeEmployeeRepo(), newFakeDepartmentRepo())

	deptID := "ghost-dept"
	_, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:         "Ada Lovelace",
		Email:        "ada@example.com",
		JobTitle:     "Engineer",
		Salary:       "150000.00",
		DepartmentID: &deptID,
	})
	assert.ErrorIs(t, err, department.ErrDepartmentNotFound)
}

func TestEmployeeService_UpdateEmployee_TrimsNameAndTitle(t *testing.T) {
	ctx := context.Background()
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, newFakeDepartmentRepo())

	created, err := svc.CreateEmployee(ctx, employee.CreateEmployeeRequest{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		JobTitle: "Engineer",
		Salary:   "150000.00",
	})
	require.NoError(t, err)

	name := "  Ada King  "
	title := " Countess of Lovelace "
	result, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       created.ID,
		Name:     &name,
		JobTitle: &title,
	})
	require.NoError(t, err)

	assert.Equal(t, "Ada King", result.Name)
	assert.Equal(t, "Countess of Lovelace", result.JobTitle)
}
