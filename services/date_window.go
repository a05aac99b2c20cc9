package services

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsISODate reports whether date is a real calendar date in YYYY-MM-DD form
func IsISODate(date string) bool {
	if !datePattern.MatchString(date) {
		return false
	}
	_, err := time.Parse(dateLayout, date)
	return err == nil
}

// DayWindow returns the first and last millisecond of the given UTC day.
// Both ends are inclusive.
func DayWindow(date string) (time.Time, time.Time, error) {
	if !datePattern.MatchString(date) {
		return time.Time{}, time.Time{}, invalidInput("date must be in YYYY-MM-DD format, got %q", date)
	}

	dayStart, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, invalidInput("date %q is not a calendar date", date)
	}

	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)
	return dayStart, dayEnd, nil
}

// ReturnWindowStart is the earliest departure accepted for a return journey:
// the start of the search day plus the delay, independent of any outbound
// arrival time. Delays of a day or more all map to the start of the next day,
// after the window closes.
func ReturnWindowStart(dayStart time.Time, delayHours int) time.Time {
	if delayHours >= 24 {
		return dayStart.Add(24 * time.Hour)
	}
	return dayStart.Add(time.Duration(delayHours) * time.Hour)
}
