package storage

import (
	"errors"
	"fmt"
	"time"

	"github.com/samber/mo"

	"github.com/blindspot/agenda/timeofday"
)

// Error types
type ErrorType string

const (
	ErrNotFound      ErrorType = "not_found"
	ErrAlreadyExists ErrorType = "already_exists"
	ErrInvalidInput  ErrorType = "invalid_input"
	ErrUnavailable   ErrorType = "unavailable"
)

// Error represents a storage-related error
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a storage Error of type ErrNotFound.
func IsNotFound(err error) bool {
	var serr *Error
	return errors.As(err, &serr) && serr.Type == ErrNotFound
}

// Event is a one-shot calendar entry. Title, Description, Location, Category
// and Change may be absent (zero) in stored data; query code maps absent
// values to display defaults rather than rejecting the record.
type Event struct {
	ID          string
	CalendarID  string
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	Category    string
	Change      int
}

// RecurrenceRule is a weekly repeating pattern bounded by a date range.
// Days is indexed by time.Weekday (0 = Sunday); an occurrence exists on a
// weekday only if its slot is set. WeekFrequency stretches the repeat to
// every N weeks counted from StartDate; zero is read as 1.
type RecurrenceRule struct {
	ID            string
	CalendarID    string
	Title         string
	Description   string
	Location      string
	StartDate     time.Time
	EndDate       time.Time
	DayStart      timeofday.TimeOfDay
	DayEnd        timeofday.TimeOfDay
	Days          [7]bool
	WeekFrequency int
	Category      string
	Change        int
}

// EventPatch selects event fields for a partial update. An absent option
// means "leave the stored value alone"; a present option overwrites, even
// with a zero value. Applying an empty patch is a successful no-op.
type EventPatch struct {
	Title       mo.Option[string]
	Description mo.Option[string]
	Location    mo.Option[string]
	StartTime   mo.Option[time.Time]
	EndTime     mo.Option[time.Time]
	Category    mo.Option[string]
	Change      mo.Option[int]
}

// IsEmpty reports whether the patch selects no fields.
func (p EventPatch) IsEmpty() bool {
	return p.Title.IsAbsent() &&
		p.Description.IsAbsent() &&
		p.Location.IsAbsent() &&
		p.StartTime.IsAbsent() &&
		p.EndTime.IsAbsent() &&
		p.Category.IsAbsent() &&
		p.Change.IsAbsent()
}

// RulePatch selects recurrence-rule fields for a partial update, with the
// same present/absent semantics as EventPatch.
type RulePatch struct {
	Title         mo.Option[string]
	Description   mo.Option[string]
	Location      mo.Option[string]
	StartDate     mo.Option[time.Time]
	EndDate       mo.Option[time.Time]
	DayStart      mo.Option[timeofday.TimeOfDay]
	DayEnd        mo.Option[timeofday.TimeOfDay]
	Days          mo.Option[[7]bool]
	WeekFrequency mo.Option[int]
	Category      mo.Option[string]
	Change        mo.Option[int]
}

// IsEmpty reports whether the patch selects no fields.
func (p RulePatch) IsEmpty() bool {
	return p.Title.IsAbsent() &&
		p.Description.IsAbsent() &&
		p.Location.IsAbsent() &&
		p.StartDate.IsAbsent() &&
		p.EndDate.IsAbsent() &&
		p.DayStart.IsAbsent() &&
		p.DayEnd.IsAbsent() &&
		p.Days.IsAbsent() &&
		p.WeekFrequency.IsAbsent() &&
		p.Category.IsAbsent() &&
		p.Change.IsAbsent()
}
