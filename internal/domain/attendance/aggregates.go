package attendance

import (
	"math"

	"github.com/shopspring/decimal"
)

// SumWorkedHours totals worked hours across records.
func SumWorkedHours(records []Attendance) decimal.Decimal {
	total := decimal.Zero
	for _, att := range records {
		total = total.Add(att.WorkedHours)
	}
	return total
}

// AverageHours averages worked hours over all records, zero-hour rows
// included; an employee clocked in but not yet out still counts toward
// the divisor. Zero when there are no records.
func AverageHours(records []Attendance) decimal.Decimal {
	if len(records) == 0 {
		return decimal.Zero
	}
	return SumWorkedHours(records).Div(decimal.NewFromInt(int64(len(records)))).Round(2)
}

// Rate returns present/total as a percentage rounded to two decimals.
// A zero total yields zero rather than a division error.
func Rate(present, total int64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(present)/float64(total)*10000) / 100
}
