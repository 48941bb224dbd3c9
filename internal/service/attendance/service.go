package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/attendance"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
	"github.com/google/uuid"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
}

func NewAttendanceService(attRepo attendance.AttendanceRepository, empRepo employee.EmployeeRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attRepo,
		EmployeeRepository:   empRepo,
	}
}

func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att := attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: req.EmployeeID,
	}
	if req.WorkDate != nil && *req.WorkDate != "" {
		att.WorkDate, _ = validator.IsValidDate(*req.WorkDate)
	}
	if req.CheckIn != nil && *req.CheckIn != "" {
		ci, _ := validator.IsValidDateTime(*req.CheckIn)
		att.CheckIn = &ci
	}
	if req.CheckOut != nil && *req.CheckOut != "" {
		co, _ := validator.IsValidDateTime(*req.CheckOut)
		att.CheckOut = &co
	}
	att.Normalize()

	created, err := s.AttendanceRepository.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	return toResponses(records), nil
}

func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.WorkDate != nil && *req.WorkDate != "" {
		att.WorkDate, _ = validator.IsValidDate(*req.WorkDate)
	}
	if req.CheckIn != nil {
		if *req.CheckIn == "" {
			att.CheckIn = nil
		} else {
			ci, _ := validator.IsValidDateTime(*req.CheckIn)
			att.CheckIn = &ci
		}
	}
	if req.CheckOut != nil {
		if *req.CheckOut == "" {
			att.CheckOut = nil
		} else {
			co, _ := validator.IsValidDateTime(*req.CheckOut)
			att.CheckOut = &co
		}
	}
	att.Normalize()

	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return s.GetAttendance(ctx, req.ID)
}

func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	return s.AttendanceRepository.Delete(ctx, id)
}

func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.ClockResponse{}, err
	}

	now := time.Now()
	att, err := s.AttendanceRepository.GetOrCreateForDay(ctx, employeeID, dateOf(now))
	if err != nil {
		return attendance.ClockResponse{}, fmt.Errorf("failed to open attendance day: %w", err)
	}

	if att.CheckIn != nil {
		return attendance.ClockResponse{
			Attendance: toResponse(att),
			AlreadySet: true,
			Message:    "already clocked in today",
		}, nil
	}

	att.CheckIn = &now
	att.Normalize()
	if err := s.AttendanceRepository.Update(ctx, att); err != nil {
		return attendance.ClockResponse{}, err
	}

	return attendance.ClockResponse{
		Attendance: toResponse(att),
		Message:    "clocked in",
	}, nil
}

func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, employeeID string) (attendance.ClockResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.ClockResponse{}, err
	}

	now := time.Now()
	att, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, dateOf(now))
	if err != nil {
		return attendance.ClockResponse{}, err
	}
	if att == nil {
		return attendance.ClockResponse{}, attendance.ErrNotClockedIn
	}

	if att.CheckOut != nil {
		return attendance.ClockResponse{
			Attendance: toResponse(*att),
			AlreadySet: true,
			Message:    "already clocked out today",
		}, nil
	}

	att.CheckOut = &now
	att.Normalize()
	if err := s.AttendanceRepository.Update(ctx, *att); err != nil {
		return attendance.ClockResponse{}, err
	}

	return attendance.ClockResponse{
		Attendance: toResponse(*att),
		Message:    "clocked out",
	}, nil
}

func (s *AttendanceServiceImpl) TodayOverview(ctx context.Context) (attendance.TodayOverview, error) {
	today := dateOf(time.Now())

	records, err := s.AttendanceRepository.ListByDate(ctx, today)
	if err != nil {
		return attendance.TodayOverview{}, fmt.Errorf("failed to list today's attendance: %w", err)
	}

	total, err := s.EmployeeRepository.Count(ctx)
	if err != nil {
		return attendance.TodayOverview{}, fmt.Errorf("failed to count employees: %w", err)
	}

	overview := attendance.TodayOverview{
		Date:    today.Format("2006-01-02"),
		Records: toResponses(records),
	}

	present := int64(0)
	hours := attendance.SumWorkedHours(records)
	for _, att := range records {
		if att.CheckIn != nil {
			present++
		}
	}

	overview.AttendanceRate = attendance.Rate(present, total)
	overview.TotalHours = hours.StringFixed(2)
	overview.AvgHours = attendance.AverageHours(records).StringFixed(2)

	return overview, nil
}

// dateOf truncates a timestamp to its calendar date in local time.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:          att.ID,
		EmployeeID:  att.EmployeeID,
		WorkDate:    att.WorkDate.Format("2006-01-02"),
		WorkedHours: att.WorkedHours.StringFixed(2),
	}
	if att.EmployeeName != nil {
		resp.EmployeeName = *att.EmployeeName
	}
	if att.CheckIn != nil {
		v := att.CheckIn.Format(time.RFC3339)
		resp.CheckIn = &v
	}
	if att.CheckOut != nil {
		v := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}

	return resp
}

func toResponses(records []attendance.Attendance) []attendance.AttendanceResponse {
	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, toResponse(att))
	}
	return responses
}
