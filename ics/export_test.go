package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/emersion/go-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blindspot/agenda/recurrence"
	"github.com/blindspot/agenda/storage"
	"github.com/blindspot/agenda/timeofday"
)

func TestExport(t *testing.T) {
	occs := []recurrence.Occurrence{
		{
			ID:          "ev-1",
			Title:       "Dentist",
			Description: "Checkup",
			Location:    "Downtown",
			Category:    "Health",
			Start:       time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC),
			End:         time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC),
		},
		{
			// zero times, must be skipped
			ID:    "ev-broken",
			Title: "Broken",
		},
	}

	cal := Export("alice", occs)
	require.Len(t, cal.Children, 1)

	event := cal.Children[0]
	assert.Equal(t, ical.CompEvent, event.Name)

	uid, err := event.Props.Text(ical.PropUID)
	require.NoError(t, err)
	assert.Equal(t, "ev-1", uid)

	summary, err := event.Props.Text(ical.PropSummary)
	require.NoError(t, err)
	assert.Equal(t, "Dentist", summary)

	start, err := event.Props.DateTime(ical.PropDateTimeStart, time.UTC)
	require.NoError(t, err)
	assert.True(t, start.Equal(time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC)))
}

func TestExport_Encodes(t *testing.T) {
	cal := Export("alice", []recurrence.Occurrence{{
		ID:    "ev-1",
		Title: "Dentist",
		Start: time.Date(2024, 1, 3, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 3, 15, 0, 0, 0, time.UTC),
	}})

	data, err := Encode(cal)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "BEGIN:VCALENDAR")
	assert.Contains(t, text, "SUMMARY:Dentist")
	assert.Contains(t, text, "END:VCALENDAR")
}

func TestRuleRRule(t *testing.T) {
	rule := storage.RecurrenceRule{
		ID:            "rule-1",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		DayStart:      timeofday.TimeOfDay{Hour: 9},
		DayEnd:        timeofday.TimeOfDay{Hour: 17},
		Days:          [7]bool{false, true, false, true, false, true, false},
		WeekFrequency: 2,
	}

	got, err := RuleRRule(rule)
	require.NoError(t, err)
	assert.Contains(t, got, "FREQ=WEEKLY")
	assert.Contains(t, got, "INTERVAL=2")
	assert.Contains(t, got, "BYDAY=MO,WE,FR")
	assert.Contains(t, got, "UNTIL=")
}

func TestRuleRRule_EmptyMask(t *testing.T) {
	_, err := RuleRRule(storage.RecurrenceRule{ID: "rule-1"})
	assert.Error(t, err)
}

func TestExportRules(t *testing.T) {
	rules := []storage.RecurrenceRule{{
		ID:        "rule-1",
		Title:     "Work",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		DayStart:  timeofday.TimeOfDay{Hour: 9},
		DayEnd:    timeofday.TimeOfDay{Hour: 17},
		Days:      [7]bool{false, true, false, true, false, true, false},
	}}

	cal, err := ExportRules("alice", rules)
	require.NoError(t, err)
	require.Len(t, cal.Children, 1)

	rruleProp := cal.Children[0].Props.Get(ical.PropRecurrenceRule)
	require.NotNil(t, rruleProp)
	assert.True(t, strings.HasPrefix(rruleProp.Value, "FREQ=WEEKLY"), "got %q", rruleProp.Value)
}

func TestExportRules_InvalidRule(t *testing.T) {
	_, err := ExportRules("alice", []storage.RecurrenceRule{{ID: "rule-1"}})
	assert.Error(t, err)
}
