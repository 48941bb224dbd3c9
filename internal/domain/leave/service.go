package leave

import "context"

type LeaveService interface {
	CreateLeave(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	GetLeave(ctx context.Context, id string) (LeaveResponse, error)
	ListLeave(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	UpdateLeave(ctx context.Context, req UpdateLeaveRequest) (LeaveResponse, error)
	DeleteLeave(ctx context.Context, id string) error

	// Approve and Reject always overwrite the current status and stamp
	// the acting reviewer, so a decision can be reversed by issuing the
	// other one.
	Approve(ctx context.Context, id, reviewer string) (LeaveResponse, error)
	Reject(ctx context.Context, id, reviewer string) (LeaveResponse, error)
}
