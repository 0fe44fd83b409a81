package utils

import (
	"iter"
	"time"
)

// Occurrences yields first and then every repetition of pattern up to and including until.
// Unknown patterns and a nil until yield only first. Monthly repetitions that fall on a
// day the month does not have are skipped, so the 31st never drifts into the next month.
func Occurrences(first time.Time, pattern string, until *time.Time) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		if !yield(first) {
			return
		}
		if until == nil {
			return
		}
		for i := 1; ; i++ {
			var next time.Time
			switch pattern {
			case "daily":
				next = first.AddDate(0, 0, i)
			case "weekly":
				next = first.AddDate(0, 0, 7*i)
			case "monthly":
				next = first.AddDate(0, i, 0)
				if next.Day() != first.Day() {
					if next.After(*until) {
						return
					}
					continue
				}
			default:
				return
			}
			if next.After(*until) {
				return
			}
			if !yield(next) {
				return
			}
		}
	}
}

// ClockBefore reports whether HH:MM a is strictly earlier than HH:MM b.
func ClockBefore(a, b string) bool {
	ta, errA := time.Parse("15:04", a)
	tb, errB := time.Parse("15:04", b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Before(tb)
}
