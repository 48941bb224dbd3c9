package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/leave"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
	"github.com/google/uuid"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, empRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: empRepo,
	}
}

func (s *LeaveServiceImpl) CreateLeave(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	end, _ := validator.IsValidDate(req.EndDate)

	request := leave.LeaveRequest{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
		Type:       leave.LeaveType(req.Type),
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	}

	created, err := s.LeaveRepository.Create(ctx, request)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

func (s *LeaveServiceImpl) GetLeave(ctx context.Context, id string) (leave.LeaveResponse, error) {
	request, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(request), nil
}

func (s *LeaveServiceImpl) ListLeave(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	var (
		requests []leave.LeaveRequest
		err      error
	)
	if employeeID != "" {
		requests, err = s.LeaveRepository.ListByEmployee(ctx, employeeID)
	} else {
		requests, err = s.LeaveRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, request := range requests {
		responses = append(responses, toResponse(request))
	}

	return responses, nil
}

func (s *LeaveServiceImpl) UpdateLeave(ctx context.Context, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	request, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if req.Type != nil {
		request.Type = leave.LeaveType(*req.Type)
	}
	if req.StartDate != nil {
		request.StartDate, _ = validator.IsValidDate(*req.StartDate)
	}
	if req.EndDate != nil {
		request.EndDate, _ = validator.IsValidDate(*req.EndDate)
	}
	if req.Reason != nil {
		request.Reason = req.Reason
	}
	if req.Status != nil {
		request.Status = leave.LeaveStatus(*req.Status)
	}

	if request.EndDate.Before(request.StartDate) {
		return leave.LeaveResponse{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}

	if err := s.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, err
	}

	return s.GetLeave(ctx, req.ID)
}

func (s *LeaveServiceImpl) DeleteLeave(ctx context.Context, id string) error {
	return s.LeaveRepository.Delete(ctx, id)
}

func (s *LeaveServiceImpl) Approve(ctx context.Context, id, reviewer string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, reviewer, leave.StatusApproved)
}

func (s *LeaveServiceImpl) Reject(ctx context.Context, id, reviewer string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, reviewer, leave.StatusRejected)
}

// decide overwrites the current status unconditionally, so a request can
// be re-decided after an earlier approval or rejection.
func (s *LeaveServiceImpl) decide(ctx context.Context, id, reviewer string, status leave.LeaveStatus) (leave.LeaveResponse, error) {
	request, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	request.Status = status
	request.ApprovedBy = &reviewer

	if err := s.LeaveRepository.Update(ctx, request); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return toResponse(request), nil
}

func toResponse(request leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:         request.ID,
		EmployeeID: request.EmployeeID,
		Type:       string(request.Type),
		StartDate:  request.StartDate.Format("2006-01-02"),
		EndDate:    request.EndDate.Format("2006-01-02"),
		Days:       request.Days(),
		Reason:     request.Reason,
		Status:     string(request.Status),
		ApprovedBy: request.ApprovedBy,
		CreatedAt:  request.CreatedAt.Format(time.RFC3339),
	}
	if request.EmployeeName != nil {
		resp.EmployeeName = *request.EmployeeName
	}

	return resp
}
