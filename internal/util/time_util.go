package util

import (
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// DateKey truncates a timestamp to its UTC calendar date, the canonical
// map key for per-date grouping.
func DateKey(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// DaysBetween counts calendar days from start to end inclusive.
func DaysBetween(start, end time.Time) int {
	return int(DateKey(end).Sub(DateKey(start)).Hours()/24) + 1
}

// EachDate lists every calendar date from start to end inclusive.
func EachDate(start, end time.Time) []time.Time {
	dates := []time.Time{}
	for d := DateKey(start); DateLte(d, end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(layout, s)
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}
