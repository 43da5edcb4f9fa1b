package schedule

import (
	"context"
	"time"

	"github.com/samber/mo"

	"github.com/blindspot/agenda/storage"
	"github.com/blindspot/agenda/timeofday"
)

// UpdateEvent applies a partial update to a single event after verifying it
// belongs to the requesting user's calendar. Only the fields selected by the
// patch are written; an empty patch succeeds without writing. On any failure
// (unknown user, unknown event, ownership mismatch, storage error) nothing is
// written and false is returned.
func (s *Service) UpdateEvent(ctx context.Context, userID, eventID string, patch storage.EventPatch) bool {
	calendarID, err := s.store.GetCalendarID(ctx, userID)
	if err != nil {
		s.logger.Warn("calendar lookup failed", "user_id", userID, "error", err)
		return false
	}

	ev, err := s.store.GetEvent(ctx, eventID)
	if err != nil {
		s.logger.Warn("event lookup failed", "event_id", eventID, "error", err)
		return false
	}
	if ev.CalendarID != calendarID {
		s.logger.Warn("event does not belong to user's calendar",
			"event_id", eventID, "user_id", userID)
		return false
	}

	if err := s.store.PatchEvent(ctx, eventID, patch); err != nil {
		s.logger.Warn("event update failed", "event_id", eventID, "error", err)
		return false
	}
	return true
}

// UpdateEventDescription replaces the description of a single event,
// ownership-checked by event id.
func (s *Service) UpdateEventDescription(ctx context.Context, userID, eventID, description string) bool {
	return s.UpdateEvent(ctx, userID, eventID, storage.EventPatch{
		Description: mo.Some(description),
	})
}

// UpdateRule applies a partial update to a single recurrence rule after the
// same ownership check as UpdateEvent.
func (s *Service) UpdateRule(ctx context.Context, userID, ruleID string, patch storage.RulePatch) bool {
	calendarID, err := s.store.GetCalendarID(ctx, userID)
	if err != nil {
		s.logger.Warn("calendar lookup failed", "user_id", userID, "error", err)
		return false
	}

	rule, err := s.store.GetRule(ctx, ruleID)
	if err != nil {
		s.logger.Warn("rule lookup failed", "rule_id", ruleID, "error", err)
		return false
	}
	if rule.CalendarID != calendarID {
		s.logger.Warn("rule does not belong to user's calendar",
			"rule_id", ruleID, "user_id", userID)
		return false
	}

	if err := s.store.PatchRule(ctx, ruleID, patch); err != nil {
		s.logger.Warn("rule update failed", "rule_id", ruleID, "error", err)
		return false
	}
	return true
}

// RenameEvents retitles every event and recurrence rule in the user's
// calendar whose title matches oldTitle. Like all title-addressed bulk
// updates, this is not transactional: a storage failure partway through
// leaves earlier writes in place and returns false.
func (s *Service) RenameEvents(ctx context.Context, userID, oldTitle, newTitle string) bool {
	return s.patchByTitle(ctx, userID, oldTitle,
		storage.EventPatch{Title: mo.Some(newTitle)},
		storage.RulePatch{Title: mo.Some(newTitle)},
	)
}

// RescheduleEvents moves the time range of every matching event, and the
// daily start/end clock of every matching recurrence rule, to the clock
// values carried by start and end.
func (s *Service) RescheduleEvents(ctx context.Context, userID, title string, start, end time.Time) bool {
	return s.patchByTitle(ctx, userID, title,
		storage.EventPatch{
			StartTime: mo.Some(start),
			EndTime:   mo.Some(end),
		},
		storage.RulePatch{
			DayStart: mo.Some(timeofday.FromTime(start)),
			DayEnd:   mo.Some(timeofday.FromTime(end)),
		},
	)
}

// RelocateEvents rewrites the location of every matching event and rule.
func (s *Service) RelocateEvents(ctx context.Context, userID, title, location string) bool {
	return s.patchByTitle(ctx, userID, title,
		storage.EventPatch{Location: mo.Some(location)},
		storage.RulePatch{Location: mo.Some(location)},
	)
}

// UpdateRuleRecurrence rewrites the weekly pattern of every recurrence rule
// matching the title: which weekdays repeat and how many weeks apart.
func (s *Service) UpdateRuleRecurrence(ctx context.Context, userID, title string, days [7]bool, weekFrequency int) bool {
	calendarID, err := s.store.GetCalendarID(ctx, userID)
	if err != nil {
		s.logger.Warn("calendar lookup failed", "user_id", userID, "error", err)
		return false
	}

	rules, err := s.store.FindRulesByTitle(ctx, calendarID, title)
	if err != nil {
		s.logger.Warn("rule search failed", "calendar_id", calendarID, "title", title, "error", err)
		return false
	}

	patch := storage.RulePatch{
		Days:          mo.Some(days),
		WeekFrequency: mo.Some(weekFrequency),
	}
	for _, rule := range rules {
		if err := s.store.PatchRule(ctx, rule.ID, patch); err != nil {
			s.logger.Warn("rule update failed", "rule_id", rule.ID, "error", err)
			return false
		}
	}
	return true
}

// patchByTitle applies an event patch to every matching event and a rule
// patch to every matching rule in the user's calendar. Writes are sequential
// and not rolled back on a later failure.
func (s *Service) patchByTitle(ctx context.Context, userID, title string, eventPatch storage.EventPatch, rulePatch storage.RulePatch) bool {
	calendarID, err := s.store.GetCalendarID(ctx, userID)
	if err != nil {
		s.logger.Warn("calendar lookup failed", "user_id", userID, "error", err)
		return false
	}

	events, err := s.store.FindEventsByTitle(ctx, calendarID, title)
	if err != nil {
		s.logger.Warn("title search failed", "calendar_id", calendarID, "title", title, "error", err)
		return false
	}
	for _, ev := range events {
		if err := s.store.PatchEvent(ctx, ev.ID, eventPatch); err != nil {
			s.logger.Warn("event update failed", "event_id", ev.ID, "error", err)
			return false
		}
	}

	rules, err := s.store.FindRulesByTitle(ctx, calendarID, title)
	if err != nil {
		s.logger.Warn("rule search failed", "calendar_id", calendarID, "title", title, "error", err)
		return false
	}
	for _, rule := range rules {
		if err := s.store.PatchRule(ctx, rule.ID, rulePatch); err != nil {
			s.logger.Warn("rule update failed", "rule_id", rule.ID, "error", err)
			return false
		}
	}
	return true
}
