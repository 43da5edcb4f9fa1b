package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blindspot/agenda/storage"
	"github.com/blindspot/agenda/timeofday"
)

// weekdayRule is a Mon/Wed/Fri 9-to-5 rule starting Monday 2024-01-01.
func weekdayRule(frequency int) storage.RecurrenceRule {
	return storage.RecurrenceRule{
		ID:            "rule-1",
		CalendarID:    "cal-1",
		Title:         "Work",
		Location:      "Office",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC),
		DayStart:      timeofday.TimeOfDay{Hour: 9},
		DayEnd:        timeofday.TimeOfDay{Hour: 17},
		Days:          [7]bool{false, true, false, true, false, true, false},
		WeekFrequency: frequency,
	}
}

func TestEngine_ExpandOn(t *testing.T) {
	engine := NewEngine()

	t.Run("matching weekday", func(t *testing.T) {
		// 2024-01-03 is a Wednesday
		occ, ok := engine.ExpandOn(weekdayRule(1), time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)).Get()
		require.True(t, ok)
		assert.Equal(t, "rule-1_2024-01-03", occ.ID)
		assert.Equal(t, time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), occ.Start)
		assert.Equal(t, time.Date(2024, 1, 3, 17, 0, 0, 0, time.UTC), occ.End)
		assert.Equal(t, "Work", occ.Title)
		assert.Equal(t, "Office", occ.Location)
		assert.Equal(t, SourceRecurring, occ.Source)
	})

	t.Run("weekday not in mask", func(t *testing.T) {
		// 2024-01-02 is a Tuesday
		result := engine.ExpandOn(weekdayRule(1), time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
		assert.True(t, result.IsAbsent())
	})

	t.Run("before start date", func(t *testing.T) {
		// 2023-12-29 is a Friday, in the mask but before the range
		result := engine.ExpandOn(weekdayRule(1), time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC))
		assert.True(t, result.IsAbsent())
	})

	t.Run("end date is inclusive", func(t *testing.T) {
		// 2024-03-29 is a Friday and exactly the end date
		occ, ok := engine.ExpandOn(weekdayRule(1), time.Date(2024, 3, 29, 0, 0, 0, 0, time.UTC)).Get()
		require.True(t, ok)
		assert.Equal(t, "rule-1_2024-03-29", occ.ID)
	})

	t.Run("one day past end date", func(t *testing.T) {
		// 2024-04-01 is the next Monday after the end date
		result := engine.ExpandOn(weekdayRule(1), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
		assert.True(t, result.IsAbsent())
	})

	t.Run("time of day ignored in target", func(t *testing.T) {
		occ, ok := engine.ExpandOn(weekdayRule(1), time.Date(2024, 1, 3, 22, 15, 0, 0, time.UTC)).Get()
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC), occ.Start)
	})
}

func TestEngine_ExpandOn_WeekFrequency(t *testing.T) {
	engine := NewEngine()
	rule := weekdayRule(2)

	// Week 0: 2024-01-01 (Mon) matches
	occ, ok := engine.ExpandOn(rule, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).Get()
	require.True(t, ok)
	assert.Equal(t, "rule-1_2024-01-01", occ.ID)

	// Week 1: 2024-01-08 (Mon) is off-cycle
	assert.True(t, engine.ExpandOn(rule, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)).IsAbsent())

	// Week 2: 2024-01-15 (Mon) matches again
	occ, ok = engine.ExpandOn(rule, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).Get()
	require.True(t, ok)
	assert.Equal(t, "rule-1_2024-01-15", occ.ID)

	// A zero frequency behaves like weekly
	zero := weekdayRule(0)
	assert.True(t, engine.ExpandOn(zero, time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)).IsPresent())
}

func TestEngine_ExpandOn_Pure(t *testing.T) {
	engine := NewEngine()
	rule := weekdayRule(1)
	day := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	first, ok := engine.ExpandOn(rule, day).Get()
	require.True(t, ok)
	second, ok := engine.ExpandOn(rule, day).Get()
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{a: 0, b: 7, want: 0},
		{a: 6, b: 7, want: 0},
		{a: 7, b: 7, want: 1},
		{a: 14, b: 7, want: 2},
		{a: -1, b: 7, want: -1},
		{a: -7, b: 7, want: -1},
		{a: -8, b: 7, want: -2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, floorDiv(tt.a, tt.b), "floorDiv(%d, %d)", tt.a, tt.b)
	}
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, daysBetween(from, from))
	assert.Equal(t, 14, daysBetween(from, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, -3, daysBetween(from, time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC)))
}
