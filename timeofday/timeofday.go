// Package timeofday converts between "H:MM AM/PM" clock strings and a
// normalized hour/minute pair. Survey answers and recurrence rules store
// their daily start and end times in this form.
package timeofday

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime is returned (wrapped) when a clock string cannot be parsed.
var ErrMalformedTime = errors.New("malformed time of day")

// TimeOfDay is a clock value with no date attached. Hour is 0-23.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Parse reads a "H:MM AM" or "HH:MM PM" string. The 12-hour component must be
// 1-12 and minutes 0-59; the period marker is case-insensitive. Mapping
// follows civil convention: 12 AM is hour 0, 12 PM stays 12, PM adds 12 to
// hours 1-11.
func Parse(text string) (TimeOfDay, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, text)
	}

	period := strings.ToUpper(fields[1])
	if period != "AM" && period != "PM" {
		return TimeOfDay{}, fmt.Errorf("%w: bad period marker in %q", ErrMalformedTime, text)
	}

	hh, mm, ok := strings.Cut(fields[0], ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: missing separator in %q", ErrMalformedTime, text)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: bad hour in %q", ErrMalformedTime, text)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: bad minute in %q", ErrMalformedTime, text)
	}
	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: hour %d out of range in %q", ErrMalformedTime, hour, text)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute %d out of range in %q", ErrMalformedTime, minute, text)
	}

	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Format renders an hour/minute pair in the 12-hour form Parse accepts, so
// Parse(Format(h, m)) round-trips for every valid pair.
func Format(hour, minute int) string {
	period := "AM"
	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		h = hour - 12
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

// FromTime extracts the wall-clock portion of t.
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// At anchors the clock value on the calendar day of t, in t's location.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour, t.Minute, 0, 0, day.Location())
}

// Minutes returns the value as minutes past midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool {
	return t.Minutes() < u.Minutes()
}

func (t TimeOfDay) String() string {
	return Format(t.Hour, t.Minute)
}
