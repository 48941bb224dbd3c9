package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create creates a new attendance record. A duplicate
	// (employee, work_date) pair returns ErrDuplicateForDay.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByID retrieves an attendance record by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a
	// specific work date; nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID string, workDate time.Time) (*Attendance, error)

	// GetOrCreateForDay returns the row for (employee, work date),
	// inserting it atomically when missing. The upsert is the safety net
	// against concurrent clock-ins for the same day.
	GetOrCreateForDay(ctx context.Context, employeeID string, workDate time.Time) (Attendance, error)

	// List retrieves attendance records, most recent work date first then
	// most recent check-in first
	List(ctx context.Context) ([]Attendance, error)

	// ListByDate retrieves the records for a work date ordered by
	// employee name
	ListByDate(ctx context.Context, workDate time.Time) ([]Attendance, error)

	// Update persists the record's mutable fields
	Update(ctx context.Context, att Attendance) error

	// Delete removes an attendance record
	Delete(ctx context.Context, id string) error
}
