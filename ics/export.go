// Package ics renders query results and stored recurrence rules as
// iCalendar data, so a day view or a whole schedule can be handed to any
// calendar client.
package ics

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
	"github.com/teambition/rrule-go"

	"github.com/blindspot/agenda/recurrence"
	"github.com/blindspot/agenda/storage"
)

const prodID = "-//blindspot//agenda//EN"

// Export wraps a set of occurrences into a VCALENDAR, one VEVENT per
// occurrence. Incomplete occurrences (zero start or end) are skipped.
func Export(name string, occurrences []recurrence.Occurrence) *ical.Calendar {
	cal := newCalendar(name)
	now := time.Now()

	for _, occ := range occurrences {
		if occ.Start.IsZero() || occ.End.IsZero() {
			continue
		}
		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, occ.ID)
		event.Props.SetText(ical.PropSummary, occ.Title)
		if occ.Description != "" {
			event.Props.SetText(ical.PropDescription, occ.Description)
		}
		if occ.Location != "" {
			event.Props.SetText(ical.PropLocation, occ.Location)
		}
		if occ.Category != "" {
			event.Props.SetText(ical.PropCategories, occ.Category)
		}
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, occ.Start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, occ.End)
		cal.Children = append(cal.Children, event.Component)
	}
	return cal
}

// ExportRules renders recurrence rules as VEVENT masters carrying an RRULE,
// anchored on each rule's first day in range.
func ExportRules(name string, rules []storage.RecurrenceRule) (*ical.Calendar, error) {
	cal := newCalendar(name)
	now := time.Now()

	for _, rule := range rules {
		rruleStr, err := RuleRRule(rule)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", rule.ID, err)
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, rule.ID)
		event.Props.SetText(ical.PropSummary, rule.Title)
		if rule.Description != "" {
			event.Props.SetText(ical.PropDescription, rule.Description)
		}
		if rule.Location != "" {
			event.Props.SetText(ical.PropLocation, rule.Location)
		}
		event.Props.SetDateTime(ical.PropDateTimeStamp, now)
		event.Props.SetDateTime(ical.PropDateTimeStart, rule.DayStart.At(rule.StartDate))
		event.Props.SetDateTime(ical.PropDateTimeEnd, rule.DayEnd.At(rule.StartDate))

		// SetText would escape the semicolons in the rule string
		prop := ical.NewProp(ical.PropRecurrenceRule)
		prop.Value = rruleStr
		event.Props.Set(prop)

		cal.Children = append(cal.Children, event.Component)
	}
	return cal, nil
}

// RuleRRule converts a weekday-mask rule into an RFC 5545 RRULE value,
// e.g. "FREQ=WEEKLY;INTERVAL=2;BYDAY=MO,WE,FR;UNTIL=...". Rules with an
// empty mask have no valid RRULE and produce an error.
func RuleRRule(rule storage.RecurrenceRule) (string, error) {
	weekdays := []rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}
	var byDay []rrule.Weekday
	for i, active := range rule.Days {
		if active {
			byDay = append(byDay, weekdays[i])
		}
	}
	if len(byDay) == 0 {
		return "", fmt.Errorf("recurrence rule has no active weekdays")
	}

	interval := rule.WeekFrequency
	if interval < 1 {
		interval = 1
	}

	opt := rrule.ROption{
		Freq:      rrule.WEEKLY,
		Interval:  interval,
		Byweekday: byDay,
		Dtstart:   rule.DayStart.At(rule.StartDate),
		Until:     rule.DayEnd.At(rule.EndDate),
	}
	if _, err := rrule.NewRRule(opt); err != nil {
		return "", fmt.Errorf("building RRULE: %w", err)
	}
	return opt.RRuleString(), nil
}

// Encode serializes a calendar into its wire form.
func Encode(cal *ical.Calendar) ([]byte, error) {
	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("encoding calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func newCalendar(name string) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropProductID, prodID)
	cal.Props.SetText(ical.PropVersion, "2.0")
	if name != "" {
		cal.Props.SetText(ical.PropName, name)
	}
	return cal
}
