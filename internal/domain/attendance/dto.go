package attendance

import (
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
)

type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id"`
	WorkDate   *string `json:"work_date,omitempty"`
	CheckIn    *string `json:"check_in,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if r.WorkDate != nil && *r.WorkDate != "" {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_date",
				Message: "work_date must be in YYYY-MM-DD format",
			})
		}
	}

	// The work date can be derived from check-in, but one of the two
	// must be present.
	if (r.WorkDate == nil || *r.WorkDate == "") && (r.CheckIn == nil || *r.CheckIn == "") {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date is required when check_in is not provided",
		})
	}

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAttendanceRequest struct {
	ID       string  `json:"-"`
	WorkDate *string `json:"work_date,omitempty"`
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.WorkDate != nil && *r.WorkDate != "" {
		if _, ok := validator.IsValidDate(*r.WorkDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "work_date",
				Message: "work_date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.CheckIn != nil && *r.CheckIn != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckIn); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_in",
				Message: "check_in must be an ISO8601 timestamp",
			})
		}
	}

	if r.CheckOut != nil && *r.CheckOut != "" {
		if _, ok := validator.IsValidDateTime(*r.CheckOut); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "check_out",
				Message: "check_out must be an ISO8601 timestamp",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	WorkDate     string  `json:"work_date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	WorkedHours  string  `json:"worked_hours"`
}

// ClockResponse carries the workflow outcome alongside the record so the
// caller can surface "already clocked in" style notices.
type ClockResponse struct {
	Attendance AttendanceResponse `json:"attendance"`
	AlreadySet bool               `json:"-"`
	Message    string             `json:"message"`
}

// TodayOverview is the attendance dashboard payload: today's records plus
// the presence aggregates.
type TodayOverview struct {
	Date           string               `json:"date"`
	Records        []AttendanceResponse `json:"records"`
	AttendanceRate float64              `json:"attendance_rate"`
	AvgHours       string               `json:"avg_hours"`
	TotalHours     string               `json:"total_hours"`
}
