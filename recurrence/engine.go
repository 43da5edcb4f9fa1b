// Package recurrence materializes concrete occurrences from stored weekly
// recurrence rules.
package recurrence

import (
	"math"
	"time"

	"github.com/samber/mo"

	"github.com/blindspot/agenda/storage"
)

// Engine expands recurrence rules against query dates. Expansion is a pure
// function of (rule, date): it never errors and never produces a partial
// result; a rule that doesn't match a date simply yields no occurrence.
type Engine struct{}

// NewEngine creates a new recurrence engine instance
func NewEngine() *Engine {
	return &Engine{}
}

// ExpandOn tests rule against the calendar day of target and synthesizes the
// occurrence for that day, if any. All predicates are conjunctive:
//
//   - the target weekday must be set in the rule's day mask
//   - the target day must lie within [StartDate, EndDate], both inclusive
//   - the whole-week offset from StartDate must be a multiple of
//     WeekFrequency
//
// A matching day gets its start and end instants anchored on the target day
// itself, not on StartDate's day.
//
// Date arithmetic is naive: rule dates and the target are expected to carry
// the same location. Mixing locations can shift the range boundaries by a
// day.
func (e *Engine) ExpandOn(rule storage.RecurrenceRule, target time.Time) mo.Option[Occurrence] {
	day := startOfDay(target)

	if !rule.Days[int(day.Weekday())] {
		return mo.None[Occurrence]()
	}

	first := startOfDay(rule.StartDate)
	last := startOfDay(rule.EndDate)
	if day.Before(first) || day.After(last) {
		return mo.None[Occurrence]()
	}

	frequency := rule.WeekFrequency
	if frequency < 1 {
		frequency = 1
	}
	if mod(floorDiv(daysBetween(first, day), 7), frequency) != 0 {
		return mo.None[Occurrence]()
	}

	return mo.Some(Occurrence{
		ID:          rule.ID + "_" + day.Format("2006-01-02"),
		Title:       rule.Title,
		Description: rule.Description,
		Location:    rule.Location,
		Start:       rule.DayStart.At(day),
		End:         rule.DayEnd.At(day),
		Category:    rule.Category,
		Change:      rule.Change,
		Source:      SourceRecurring,
	})
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from one midnight to another. Rounding
// absorbs the odd hour a DST transition inserts or removes.
func daysBetween(from, to time.Time) int {
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// floorDiv divides rounding toward negative infinity, so week offsets for
// days before the rule start stay correct.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}
