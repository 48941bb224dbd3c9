package department

import (
	"context"
	"fmt"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/department"
	"github.com/google/uuid"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(repo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{DepartmentRepository: repo}
}

func (s *DepartmentServiceImpl) CreateDepartment(ctx context.Context, req department.CreateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	dept := department.Department{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	}

	created, err := s.DepartmentRepository.Create(ctx, dept)
	if err != nil {
		return department.DepartmentResponse{}, fmt.Errorf("failed to create department: %w", err)
	}

	return toResponse(created), nil
}

func (s *DepartmentServiceImpl) GetDepartment(ctx context.Context, id string) (department.DepartmentResponse, error) {
	dept, err := s.DepartmentRepository.GetByID(ctx, id)
	if err != nil {
		return department.DepartmentResponse{}, err
	}

	return toResponse(dept), nil
}

func (s *DepartmentServiceImpl) ListDepartments(ctx context.Context) ([]department.DepartmentResponse, error) {
	departments, err := s.DepartmentRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	responses := make([]department.DepartmentResponse, 0, len(departments))
	for _, dept := range departments {
		responses = append(responses, toResponse(dept))
	}

	return responses, nil
}

func (s *DepartmentServiceImpl) UpdateDepartment(ctx context.Context, req department.UpdateDepartmentRequest) (department.DepartmentResponse, error) {
	if err := req.Validate(); err != nil {
		return department.DepartmentResponse{}, err
	}

	if err := s.DepartmentRepository.Update(ctx, req); err != nil {
		return department.DepartmentResponse{}, err
	}

	return s.GetDepartment(ctx, req.ID)
}

func (s *DepartmentServiceImpl) DeleteDepartment(ctx context.Context, id string) error {
	return s.DepartmentRepository.Delete(ctx, id)
}

func toResponse(dept department.Department) department.DepartmentResponse {
	var count int64
	if dept.EmployeeCount != nil {
		count = *dept.EmployeeCount
	}

	return department.DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Description:   dept.Description,
		EmployeeCount: count,
		CreatedAt:     dept.CreatedAt.Format(time.RFC3339),
	}
}
