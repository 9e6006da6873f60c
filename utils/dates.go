// utils/dates.go
package utils

import "time"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// PreviousDayRange returns the [start, end) bounds of the day before t.
func PreviousDayRange(t time.Time) (time.Time, time.Time) {
	end := BeginningOfDay(t)
	return end.AddDate(0, 0, -1), end
}
