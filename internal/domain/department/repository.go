package department

import "context"

// DepartmentRepository defines data access methods for departments.
type DepartmentRepository interface {
	// Create creates a new department
	Create(ctx context.Context, dept Department) (Department, error)

	// GetByID retrieves a department by ID
	GetByID(ctx context.Context, id string) (Department, error)

	// List retrieves all departments ordered by name, with employee counts
	List(ctx context.Context) ([]Department, error)

	// Update updates an existing department
	Update(ctx context.Context, req UpdateDepartmentRequest) error

	// Delete removes a department; employees referencing it are detached,
	// not deleted
	Delete(ctx context.Context, id string) error
}
