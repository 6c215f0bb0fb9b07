package utils

import (
	"fmt"
	"time"

	"github.com/jcallahan/wellnest/internal/constants"
)

// DayString formats an instant as a calendar-day string (YYYY-MM-DD) in the
// instant's own location. Habit completion tracking compares these strings,
// never raw instants, so toggles near midnight cannot double-count a day.
func DayString(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Today returns today's calendar-day string in the system local timezone.
func Today() string {
	return DayString(time.Now())
}

// TodayInTimezone returns today's date string (YYYY-MM-DD) in the specified
// timezone. This ensures that "today" is determined by the user's configured
// timezone, not the system timezone.
func TodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return DayString(now), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// ParseDay parses a calendar-day string (YYYY-MM-DD).
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// ValidDay reports whether the string is a well-formed calendar-day string.
func ValidDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}

// PrevDay returns the calendar day immediately before the given day string.
func PrevDay(day string) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return DayString(t.AddDate(0, 0, -1)), nil
}

// FormatInterval renders a minute count as a human-readable duration phrase,
// e.g. "45 minutes", "1 hour", "2 hours", "2 hours and 30 minutes".
func FormatInterval(minutes int) string {
	switch {
	case minutes < 60:
		return fmt.Sprintf("%d minutes", minutes)
	case minutes == 60:
		return "1 hour"
	case minutes%60 == 0:
		return fmt.Sprintf("%d hours", minutes/60)
	default:
		hours := minutes / 60
		mins := minutes % 60
		return fmt.Sprintf("%d hours and %d minutes", hours, mins)
	}
}
