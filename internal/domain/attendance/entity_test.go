package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(hour, min int) time.Time {
	return time.Date(2025, 3, 10, hour, min, 0, 0, time.UTC)
}

func TestNormalize_ComputesWorkedHours(t *testing.T) {
	checkIn := ts(9, 0)
	checkOut := ts(17, 30)

	att := Attendance{CheckIn: &checkIn, CheckOut: &checkOut}
	att.Normalize()

	assert.Equal(t, "8.50", att.WorkedHours.StringFixed(2))
}

func TestNormalize_RoundsHalfUp(t *testing.T) {
	checkIn := ts(9, 0)
	// 8h 15m 27s = 8.2575h, rounds to 8.26
	checkOut := checkIn.Add(8*time.Hour + 15*time.Minute + 27*time.Second)

	att := Attendance{CheckIn: &checkIn, CheckOut: &checkOut}
	att.Normalize()

	assert.Equal(t, "8.26", att.WorkedHours.StringFixed(2))
}

func TestNormalize_DerivesWorkDateFromCheckIn(t *testing.T) {
	checkIn := ts(9, 0)

	att := Attendance{CheckIn: &checkIn}
	att.Normalize()

	assert.Equal(t, "2025-03-10", att.WorkDate.Format("2006-01-02"))
}

func TestNormalize_KeepsExplicitWorkDate(t *testing.T) {
	checkIn := ts(9, 0)
	explicit := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)

	att := Attendance{WorkDate: explicit, CheckIn: &checkIn}
	att.Normalize()

	assert.Equal(t, "2025-03-09", att.WorkDate.Format("2006-01-02"))
}

func TestNormalize_SkipsInvertedPair(t *testing.T) {
	checkIn := ts(17, 0)
	checkOut := ts(9, 0)

	att := Attendance{CheckIn: &checkIn, CheckOut: &checkOut}
	att.Normalize()

	assert.True(t, att.WorkedHours.IsZero())
}

func TestNormalize_SkipsIncompletePair(t *testing.T) {
	checkIn := ts(9, 0)

	att := Attendance{CheckIn: &checkIn}
	att.Normalize()

	assert.True(t, att.WorkedHours.IsZero())
}

func TestNormalize_Idempotent(t *testing.T) {
	checkIn := ts(9, 0)
	checkOut := ts(17, 30)

	att := Attendance{CheckIn: &checkIn, CheckOut: &checkOut}
	att.Normalize()
	first := att.WorkedHours
	firstDate := att.WorkDate

	att.Normalize()

	assert.True(t, first.Equal(att.WorkedHours))
	assert.Equal(t, firstDate, att.WorkDate)
}
