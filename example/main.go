// Command example seeds the in-memory store with a small calendar and walks
// through the query and mutation operations.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/blindspot/agenda/ics"
	"github.com/blindspot/agenda/schedule"
	"github.com/blindspot/agenda/storage"
	"github.com/blindspot/agenda/storage/memory"
	"github.com/blindspot/agenda/timeofday"
)

const (
	userID     = "alice"
	calendarID = "cal-alice"
)

func main() {
	store := setupStore()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	svc := schedule.New(store, logger)
	ctx := context.Background()

	// Day view: one-shot and recurring occurrences merged
	day := svc.EventsOn(ctx, userID, 2024, time.January, 3)
	fmt.Printf("events on 2024-01-03 (%d):\n", len(day))
	for _, occ := range day {
		fmt.Printf("  %s - %s  %-20s [%s]\n",
			occ.Start.Format("15:04"), occ.End.Format("15:04"), occ.Title, occ.Source)
	}

	// Month view: stored one-shot events only
	month := svc.EventsInMonth(ctx, userID, 2024, time.January)
	fmt.Printf("one-shot events in January 2024: %d\n", len(month))

	// Title search with display formatting
	for _, view := range svc.FindByTitle(ctx, userID, "Dentist") {
		fmt.Printf("found %q at %s\n", view.Title, view.StartTime)
	}

	// Title-addressed rename touches events and rules alike
	if svc.RenameEvents(ctx, userID, "Work", "Deep work") {
		fmt.Println("renamed recurring block")
	}

	// Hand the day to any calendar client
	data, err := ics.Encode(ics.Export("agenda", day))
	if err != nil {
		log.Fatalf("encoding ICS: %v", err)
	}
	os.Stdout.Write(data)
}

// setupStore seeds a user, a dentist appointment and a weekday work rule.
func setupStore() *memory.Store {
	store := memory.New()
	store.AddUser(userID, calendarID)

	store.AddEvent(storage.Event{
		ID:          uuid.New().String(),
		CalendarID:  calendarID,
		Title:       "Dentist",
		Description: "Checkup",
		Location:    "Downtown clinic",
		StartTime:   time.Date(2024, 1, 3, 14, 0, 0, 0, time.Local),
		EndTime:     time.Date(2024, 1, 3, 15, 0, 0, 0, time.Local),
		Category:    "Health",
	})

	dayStart, err := timeofday.Parse("9:00 AM")
	if err != nil {
		log.Fatalf("parsing day start: %v", err)
	}
	dayEnd, err := timeofday.Parse("5:00 PM")
	if err != nil {
		log.Fatalf("parsing day end: %v", err)
	}
	store.AddRule(storage.RecurrenceRule{
		ID:            uuid.New().String(),
		CalendarID:    calendarID,
		Title:         "Work",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local),
		EndDate:       time.Date(2024, 6, 28, 0, 0, 0, 0, time.Local),
		DayStart:      dayStart,
		DayEnd:        dayEnd,
		Days:          [7]bool{false, true, false, true, false, true, false},
		WeekFrequency: 1,
		Category:      "Focus",
	})

	return store
}
