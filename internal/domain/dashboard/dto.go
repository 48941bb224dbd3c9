package dashboard

import "github.com/EricaDiffo/HR-MANAGEMENT-SYS/internal/domain/employee"

// DashboardResponse is the combined payload for the main dashboard page.
type DashboardResponse struct {
	TotalEmployees    int64                       `json:"total_employees"`
	TotalDepartments  int64                       `json:"total_departments"`
	PresentToday      int64                       `json:"present_today"`
	AttendanceRate    float64                     `json:"attendance_rate"`
	AvgHoursToday     string                      `json:"avg_hours_today"`
	TotalHoursToday   string                      `json:"total_hours_today"`
	PendingLeaves     int64                       `json:"pending_leaves"`
	RecentEmployees   []employee.EmployeeResponse `json:"recent_employees"`
	GeneratedAt       string                      `json:"generated_at"`
}
