package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Attendance struct {
	ID          string
	EmployeeID  string
	WorkDate    time.Time
	CheckIn     *time.Time
	CheckOut    *time.Time
	WorkedHours decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO
	EmployeeName *string
}

var secondsPerHour = decimal.NewFromInt(3600)

// Normalize applies the derivation rules before every persist:
// a missing work date is taken from the check-in date, and worked hours
// are recomputed whenever check-out is strictly after check-in. When the
// pair is incomplete or inverted the previous worked-hours value is kept.
// Calling Normalize twice on unchanged timestamps yields the same result.
func (a *Attendance) Normalize() {
	if a.WorkDate.IsZero() && a.CheckIn != nil {
		ci := *a.CheckIn
		a.WorkDate = time.Date(ci.Year(), ci.Month(), ci.Day(), 0, 0, 0, 0, ci.Location())
	}

	if a.CheckIn != nil && a.CheckOut != nil && a.CheckOut.After(*a.CheckIn) {
		seconds := decimal.NewFromFloat(a.CheckOut.Sub(*a.CheckIn).Seconds())
		a.WorkedHours = seconds.Div(secondsPerHour).Round(2)
	}
}
