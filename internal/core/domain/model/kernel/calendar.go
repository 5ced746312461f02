package kernel

import (
	"math"
	"time"
)

// Day is the unit of every storage period: free days, warning days and
// billable days are all counted in whole 24-hour days.
const Day = 24 * time.Hour

// AddDays shifts t by a number of calendar days, keeping the wall-clock time.
// Negative values move backwards.
func AddDays(t time.Time, days int) time.Time {
	return t.AddDate(0, 0, days)
}

// CeilDays converts a duration to whole days, rounding any partial day up.
// A partial day already counts as a day of storage.
//
// Example:
//
//	kernel.CeilDays(36 * time.Hour)  // 2
//	kernel.CeilDays(-36 * time.Hour) // -1
func CeilDays(d time.Duration) int {
	return int(math.Ceil(float64(d) / float64(Day)))
}
