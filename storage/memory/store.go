// memory based implementation for testing purposes
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/blindspot/agenda/storage"
)

// Store implements the storage.Store interface using in-memory maps
type Store struct {
	mu        sync.RWMutex
	calendars map[string]string // key: userID, value: calendarID
	events    map[string]*storage.Event
	rules     map[string]*storage.RecurrenceRule
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		calendars: make(map[string]string),
		events:    make(map[string]*storage.Event),
		rules:     make(map[string]*storage.RecurrenceRule),
	}
}

// AddUser registers a user with the given calendar id.
func (s *Store) AddUser(userID, calendarID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calendars[userID] = calendarID
}

// AddEvent inserts a one-shot event, generating an id when none is set, and
// returns the stored id.
func (s *Store) AddEvent(ev storage.Event) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	s.events[ev.ID] = &ev
	return ev.ID
}

// AddRule inserts a recurrence rule, generating an id when none is set, and
// returns the stored id.
func (s *Store) AddRule(rule storage.RecurrenceRule) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rule.ID == "" {
		rule.ID = uuid.New().String()
	}
	s.rules[rule.ID] = &rule
	return rule.ID
}

func (s *Store) GetCalendarID(_ context.Context, userID string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	calendarID, ok := s.calendars[userID]
	if !ok {
		return "", &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "no calendar for user",
		}
	}
	return calendarID, nil
}

func (s *Store) ListEvents(_ context.Context, calendarID string) ([]storage.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []storage.Event
	for _, ev := range s.events {
		if ev.CalendarID == calendarID {
			events = append(events, *ev)
		}
	}
	return events, nil
}

func (s *Store) FindEventsByTitle(_ context.Context, calendarID, title string) ([]storage.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var events []storage.Event
	for _, ev := range s.events {
		if ev.CalendarID == calendarID && ev.Title == title {
			events = append(events, *ev)
		}
	}
	return events, nil
}

func (s *Store) GetEvent(_ context.Context, eventID string) (*storage.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.events[eventID]
	if !ok {
		return nil, &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "event not found",
		}
	}
	found := *ev
	return &found, nil
}

func (s *Store) ListRules(_ context.Context, calendarID string) ([]storage.RecurrenceRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rules []storage.RecurrenceRule
	for _, rule := range s.rules {
		if rule.CalendarID == calendarID {
			rules = append(rules, *rule)
		}
	}
	return rules, nil
}

func (s *Store) FindRulesByTitle(_ context.Context, calendarID, title string) ([]storage.RecurrenceRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rules []storage.RecurrenceRule
	for _, rule := range s.rules {
		if rule.CalendarID == calendarID && rule.Title == title {
			rules = append(rules, *rule)
		}
	}
	return rules, nil
}

func (s *Store) GetRule(_ context.Context, ruleID string) (*storage.RecurrenceRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rule, ok := s.rules[ruleID]
	if !ok {
		return nil, &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "rule not found",
		}
	}
	found := *rule
	return &found, nil
}

func (s *Store) PatchEvent(_ context.Context, eventID string, patch storage.EventPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ev, ok := s.events[eventID]
	if !ok {
		return &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "event not found",
		}
	}

	if v, ok := patch.Title.Get(); ok {
		ev.Title = v
	}
	if v, ok := patch.Description.Get(); ok {
		ev.Description = v
	}
	if v, ok := patch.Location.Get(); ok {
		ev.Location = v
	}
	if v, ok := patch.StartTime.Get(); ok {
		ev.StartTime = v
	}
	if v, ok := patch.EndTime.Get(); ok {
		ev.EndTime = v
	}
	if v, ok := patch.Category.Get(); ok {
		ev.Category = v
	}
	if v, ok := patch.Change.Get(); ok {
		ev.Change = v
	}
	return nil
}

func (s *Store) PatchRule(_ context.Context, ruleID string, patch storage.RulePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rule, ok := s.rules[ruleID]
	if !ok {
		return &storage.Error{
			Type:    storage.ErrNotFound,
			Message: "rule not found",
		}
	}

	if v, ok := patch.Title.Get(); ok {
		rule.Title = v
	}
	if v, ok := patch.Description.Get(); ok {
		rule.Description = v
	}
	if v, ok := patch.Location.Get(); ok {
		rule.Location = v
	}
	if v, ok := patch.StartDate.Get(); ok {
		rule.StartDate = v
	}
	if v, ok := patch.EndDate.Get(); ok {
		rule.EndDate = v
	}
	if v, ok := patch.DayStart.Get(); ok {
		rule.DayStart = v
	}
	if v, ok := patch.DayEnd.Get(); ok {
		rule.DayEnd = v
	}
	if v, ok := patch.Days.Get(); ok {
		rule.Days = v
	}
	if v, ok := patch.WeekFrequency.Get(); ok {
		rule.WeekFrequency = v
	}
	if v, ok := patch.Category.Get(); ok {
		rule.Category = v
	}
	if v, ok := patch.Change.Get(); ok {
		rule.Change = v
	}
	return nil
}
