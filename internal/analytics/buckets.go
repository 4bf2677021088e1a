package analytics

import (
	"fmt"
	"time"
)

// Supported look-back window, in months. Values outside the range are
// clamped, not rejected.
const (
	MinMonthsBack     = 3
	MaxMonthsBack     = 12
	DefaultMonthsBack = 6
)

// MonthBucket is one calendar-month window of a report series, covering
// [Start, End).
type MonthBucket struct {
	Label string
	Start time.Time
	End   time.Time
}

var spanishMonths = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// ClampMonthsBack forces months into [MinMonthsBack, MaxMonthsBack].
func ClampMonthsBack(months int) int {
	if months < MinMonthsBack {
		return MinMonthsBack
	}
	if months > MaxMonthsBack {
		return MaxMonthsBack
	}
	return months
}

// MonthBuckets returns months calendar-month buckets ending at now's month,
// ordered oldest first. Each bucket is the half-open range [Start, End) with
// End the first instant of the next month: a row stamped exactly at a
// month's first midnight belongs to that month only. Closed upper bounds
// don't survive the round trip to timestamptz, which carries microseconds
// and rounds a ...999999999 fraction up into the next month.
// Pure function of (now, months).
func MonthBuckets(now time.Time, months int) []MonthBucket {
	months = ClampMonthsBack(months)

	// Anchor on the first of the month so AddDate never normalizes
	// day-of-month overflow (e.g. May 31 minus 3 months).
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	buckets := make([]MonthBucket, 0, months)
	for i := months - 1; i >= 0; i-- {
		start := anchor.AddDate(0, -i, 0)
		end := start.AddDate(0, 1, 0)
		buckets = append(buckets, MonthBucket{
			Label: monthLabel(start),
			Start: start,
			End:   end,
		})
	}

	return buckets
}

// monthLabel formats a bucket start as abbreviated Spanish month plus
// two-digit year, e.g. "ene 25".
func monthLabel(t time.Time) string {
	return fmt.Sprintf("%s %02d", spanishMonths[t.Month()-1], t.Year()%100)
}
