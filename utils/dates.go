// utils/dates.go
package utils

import "time"

const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// FormatSlotDate renders a time as the stored slot date string.
func FormatSlotDate(t time.Time) string {
	return t.Format(SlotDateLayout)
}

// ParseSlotDate parses a stored slot date string.
func ParseSlotDate(s string) (time.Time, error) {
	return time.Parse(SlotDateLayout, s)
}

// HourString renders an hour-of-day as a slot time string, e.g. 9 -> "09:00".
func HourString(hour int) string {
	return time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format(SlotTimeLayout)
}
