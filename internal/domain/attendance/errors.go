package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrNotClockedIn       = errors.New("no attendance record for today")
	ErrDuplicateForDay    = errors.New("attendance already recorded for this employee and date")
)
