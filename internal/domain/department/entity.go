package department

import "time"

type Department struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time

	// DTO
	EmployeeCount *int64
}
