package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/department"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
	"github.com/google/uuid"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	department.DepartmentRepository
}

func NewEmployeeService(empRepo employee.EmployeeRepository, deptRepo department.DepartmentRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository:   empRepo,
		DepartmentRepository: deptRepo,
	}
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	salary, _ := validator.IsPositiveAmount(req.Salary)

	// Hire date defaults to today, on the local calendar day like the
	// attendance workflows.
	now := time.Now()
	hireDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.HireDate != nil && *req.HireDate != "" {
		hireDate, _ = validator.IsValidDate(*req.HireDate)
	}

	if req.DepartmentID != nil {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	emp := employee.Employee{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        req.Email,
		JobTitle:     strings.TrimSpace(req.JobTitle),
		Salary:       salary,
		DepartmentID: req.DepartmentID,
		HireDate:     hireDate,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, ToResponse(emp))
	}

	return responses, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.Name != nil {
		trimmed := strings.TrimSpace(*req.Name)
		req.Name = &trimmed
	}
	if req.JobTitle != nil {
		trimmed := strings.TrimSpace(*req.JobTitle)
		req.JobTitle = &trimmed
	}

	if req.DepartmentID != nil && !req.ClearDepartment {
		if _, err := s.DepartmentRepository.GetByID(ctx, *req.DepartmentID); err != nil {
			return employee.EmployeeResponse{}, err
		}
	}

	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetEmployee(ctx, req.ID)
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// ToResponse maps the entity to its wire form. Shared with the dashboard,
// which embeds recent employees in its payload.
func ToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		Name:           emp.Name,
		Email:          emp.Email,
		JobTitle:       emp.JobTitle,
		Salary:         emp.Salary.StringFixed(2),
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		HireDate:       emp.HireDate.Format("2006-01-02"),
		CreatedAt:      emp.CreatedAt.Format(time.RFC3339),
	}
}
