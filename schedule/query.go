package schedule

import (
	"context"
	"sort"
	"time"

	"github.com/blindspot/agenda/recurrence"
	"github.com/blindspot/agenda/storage"
)

// EventsOn returns every occurrence active on the given calendar day, one-shot
// and recurring merged into one sequence ascending by start instant. Ties keep
// one-shot occurrences ahead of recurring ones.
//
// A user without a calendar gets an empty result rather than a failure; day
// views must always be renderable, so the not-found case is deliberately
// indistinguishable from an empty calendar here.
func (s *Service) EventsOn(ctx context.Context, userID string, year int, month time.Month, day int) []recurrence.Occurrence {
	occurrences := []recurrence.Occurrence{}

	calendarID, err := s.store.GetCalendarID(ctx, userID)
	if err != nil {
		if storage.IsNotFound(err) {
			s.logger.Debug("no calendar for user", "user_id", userID)
		} else {
			s.logger.Warn("calendar lookup failed", "user_id", userID, "error", err)
		}
		return occurrences
	}

	events, err := s.store.ListEvents(ctx, calendarID)
	if err != nil {
		s.logger.Warn("listing events failed", "calendar_id", calendarID, "error", err)
		return occurrences
	}
	for _, ev := range events {
		if ev.StartTime.IsZero() || ev.EndTime.IsZero() {
			s.logger.Warn("skipping event with invalid dates", "event_id", ev.ID)
			continue
		}
		y, m, d := ev.StartTime.Date()
		if y == year && m == month && d == day {
			occurrences = append(occurrences, oneShotOccurrence(ev))
		}
	}

	rules, err := s.store.ListRules(ctx, calendarID)
	if err != nil {
		s.logger.Warn("listing recurrence rules failed", "calendar_id", calendarID, "error", err)
		return []recurrence.Occurrence{}
	}
	target := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	for _, rule := range rules {
		if occ, ok := s.engine.ExpandOn(rule, target).Get(); ok {
			occurrences = append(occurrences, withDisplayDefaults(occ))
		}
	}

	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Start.Before(occurrences[j].Start)
	})
	return occurrences
}

// EventsInMonth returns the one-shot events whose start falls in the given
// month, unordered. Recurrence rules are not expanded here: the month view
// has always shown stored events only, and that asymmetry with EventsOn is
// kept on purpose.
func (s *Service) EventsInMonth(ctx context.Context, userID string, year int, month time.Month) []recurrence.Occurrence {
	occurrences := []recurrence.Occurrence{}

	calendarID, err := s.store.GetCalendarID(ctx, userID)
	if err != nil {
		s.logger.Warn("calendar lookup failed", "user_id", userID, "error", err)
		return occurrences
	}

	events, err := s.store.ListEvents(ctx, calendarID)
	if err != nil {
		s.logger.Warn("listing events failed", "calendar_id", calendarID, "error", err)
		return occurrences
	}
	for _, ev := range events {
		if ev.StartTime.IsZero() || ev.EndTime.IsZero() {
			s.logger.Warn("skipping event with invalid dates", "event_id", ev.ID)
			continue
		}
		if ev.StartTime.Year() == year && ev.StartTime.Month() == month {
			occurrences = append(occurrences, oneShotOccurrence(ev))
		}
	}
	return occurrences
}

// oneShotOccurrence projects a stored event into an occurrence, filling
// display defaults for absent fields.
func oneShotOccurrence(ev storage.Event) recurrence.Occurrence {
	change := ev.Change
	if change == 0 {
		change = defaultChange
	}
	return withDisplayDefaults(recurrence.Occurrence{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		Location:    ev.Location,
		Start:       ev.StartTime,
		End:         ev.EndTime,
		Category:    ev.Category,
		Change:      change,
		Source:      recurrence.SourceOneShot,
	})
}

func withDisplayDefaults(occ recurrence.Occurrence) recurrence.Occurrence {
	if occ.Title == "" {
		occ.Title = defaultTitle
	}
	if occ.Category == "" {
		occ.Category = defaultCategory
	}
	return occ
}
