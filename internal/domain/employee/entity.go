package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	Name         string
	Email        string
	JobTitle     string
	Salary       decimal.Decimal
	DepartmentID *string
	HireDate     time.Time
	CreatedAt    time.Time

	// DTO
	DepartmentName *string
}
