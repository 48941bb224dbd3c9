package employee

import (
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	JobTitle     string  `json:"job_title"`
	Salary       string  `json:"salary"`
	DepartmentID *string `json:"department_id,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if validator.IsEmpty(r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title must not be empty",
		})
	}
	if len(r.JobTitle) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Salary) {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary is required",
		})
	} else if _, ok := validator.IsPositiveAmount(r.Salary); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must be a positive number with at most 2 decimal places",
		})
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	JobTitle     *string `json:"job_title,omitempty"`
	Salary       *string `json:"salary,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	HireDate     *string `json:"hire_date,omitempty"`

	// ClearDepartment detaches the employee from its department when true.
	ClearDepartment bool `json:"clear_department,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if r.JobTitle != nil && validator.IsEmpty(*r.JobTitle) {
		errs = append(errs, validator.ValidationError{
			Field:   "job_title",
			Message: "job_title must not be empty",
		})
	}

	if r.Salary != nil {
		if _, ok := validator.IsPositiveAmount(*r.Salary); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "salary",
				Message: "salary must be a positive number with at most 2 decimal places",
			})
		}
	}

	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	JobTitle       string  `json:"job_title"`
	Salary         string  `json:"salary"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	HireDate       string  `json:"hire_date"`
	CreatedAt      string  `json:"created_at"`
}
