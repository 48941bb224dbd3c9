package leave

import "context"

// LeaveRepository defines data access methods for leave requests.
type LeaveRepository interface {
	// Create creates a new leave request
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID with the employee name
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves all leave requests, newest first
	List(ctx context.Context) ([]LeaveRequest, error)

	// ListByEmployee retrieves the requests for a single employee,
	// newest first
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)

	// Update persists the request's mutable fields including status and
	// reviewer
	Update(ctx context.Context, req LeaveRequest) error

	// Delete removes a leave request
	Delete(ctx context.Context, id string) error

	// CountByStatus returns how many requests currently hold status
	CountByStatus(ctx context.Context, status LeaveStatus) (int64, error)
}
