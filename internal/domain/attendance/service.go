package attendance

import "context"

type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListAttendance(ctx context.Context) ([]AttendanceResponse, error)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id string) error

	// ClockIn records the current time as check-in on today's row for the
	// employee, creating the row when needed. A second clock-in on the
	// same day is a no-op, not an error.
	ClockIn(ctx context.Context, employeeID string) (ClockResponse, error)

	// ClockOut stamps check-out on today's row. When no row exists for
	// today it returns ErrNotClockedIn; a second clock-out is a no-op.
	ClockOut(ctx context.Context, employeeID string) (ClockResponse, error)

	// TodayOverview returns today's records with presence aggregates.
	TodayOverview(ctx context.Context) (TodayOverview, error)
}
