package employee

import "context"

// EmployeeRepository defines data access methods for employees.
type EmployeeRepository interface {
	// Create creates a new employee
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee by ID with its department name
	GetByID(ctx context.Context, id string) (Employee, error)

	// List retrieves all employees, newest first
	List(ctx context.Context) ([]Employee, error)

	// ListRecent retrieves the most recently added employees
	ListRecent(ctx context.Context, limit int) ([]Employee, error)

	// Update applies the non-nil fields of req
	Update(ctx context.Context, req UpdateEmployeeRequest) error

	// Delete removes an employee; attendance and leave rows cascade
	Delete(ctx context.Context, id string) error

	// Count returns the total number of employees
	Count(ctx context.Context) (int64, error)
}
