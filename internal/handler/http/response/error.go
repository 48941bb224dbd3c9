package response

import (
	"errors"
	"net/http"

	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/attendance"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/auth"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/department"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/leave"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/user"
	"github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrSignupFailed):
		BadRequest(w, "Signup failed, please try again", nil)
	case errors.Is(err, auth.ErrResendFailed):
		BadRequest(w, "Could not resend verification email", nil)
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		ValidationError(w, map[string]string{"email": "email is already registered"})

	// Department domain errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		ValidationError(w, map[string]string{"name": "department name already exists"})

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateForDay):
		ValidationError(w, map[string]string{"work_date": "attendance already recorded for this day"})
	case errors.Is(err, attendance.ErrNotClockedIn):
		NotFound(w, "No clock-in recorded for today")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
