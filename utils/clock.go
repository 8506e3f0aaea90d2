package utils

import (
	"time"

	"catering-booking/apperrors"

	"github.com/jinzhu/now"
)

// CivilTimeZone is the business's civil timezone. Wire times are interpreted
// here before the offset is stripped.
const CivilTimeZone = "America/Chicago"

var civilLocation *time.Location

func init() {
	loc, err := time.LoadLocation(CivilTimeZone)
	if err != nil {
		// Zone database missing; wall-clock math still works in UTC.
		loc = time.UTC
	}
	civilLocation = loc
}

// ParseDate parses a YYYY-MM-DD wire date, normalized to the beginning of
// the day.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, apperrors.Validation("Invalid date or time format.")
	}
	return now.New(t).BeginningOfDay(), nil
}

// CombineClock combines a wire time with the event date the way stored rows
// expect: the clock is interpreted in America/Chicago for the given date and
// the offset is then discarded, leaving a naive wall-clock value. Accepts
// HH:MM:SS, falling back to RFC 3339 for clients that send full timestamps.
func CombineClock(date time.Time, s string) (time.Time, error) {
	clock, err := time.Parse("15:04:05", s)
	if err != nil {
		ts, rfcErr := time.Parse(time.RFC3339, s)
		if rfcErr != nil {
			return time.Time{}, apperrors.Validation("Invalid date or time format.")
		}
		clock = ts
	}

	// Localize, then strip: the localized instant's wall clock is rebuilt in
	// UTC so the stored value carries no offset. Existing rows were written
	// this way and the representation must not change under them.
	localized := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), clock.Second(), 0, civilLocation)
	return time.Date(localized.Year(), localized.Month(), localized.Day(),
		localized.Hour(), localized.Minute(), localized.Second(), 0, time.UTC), nil
}

// FormatDate renders a stored date back to its YYYY-MM-DD wire form.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}
