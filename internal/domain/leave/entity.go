package leave

import "time"

type LeaveType string

const (
	TypeAnnual LeaveType = "annual"
	TypeSick   LeaveType = "sick"
	TypeUnpaid LeaveType = "unpaid"
	TypeOther  LeaveType = "other"
)

type LeaveStatus string

const (
	StatusPending   LeaveStatus = "pending"
	StatusApproved  LeaveStatus = "approved"
	StatusRejected  LeaveStatus = "rejected"
	StatusCancelled LeaveStatus = "cancelled"
)

type LeaveRequest struct {
	ID         string
	EmployeeID string
	Type       LeaveType
	StartDate  time.Time
	EndDate    time.Time
	Reason     *string
	Status     LeaveStatus
	ApprovedBy *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses.
	EmployeeName *string
}

// Days is the inclusive length of the leave in calendar days.
func (l *LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}

func ValidTypes() []string {
	return []string{string(TypeAnnual), string(TypeSick), string(TypeUnpaid), string(TypeOther)}
}

func ValidStatuses() []string {
	return []string{string(StatusPending), string(StatusApproved), string(StatusRejected), string(StatusCancelled)}
}
