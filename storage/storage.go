// Package storage defines the persistence contract for calendar records.
// The query and mutation services depend only on the Store interface; wire a
// database-backed implementation behind it, or use the memory subpackage for
// tests and demos. Please use the error types provided.
package storage

import "context"

// Store is the interface a persistence backend must implement. Every record
// is grouped under a calendar id, the ownership key for one user's calendar;
// implementations must filter by it before any other predicate.
type Store interface {
	// GetCalendarID resolves the calendar id belonging to a user.
	// Returns an Error of type ErrNotFound when the user has no calendar.
	GetCalendarID(ctx context.Context, userID string) (string, error)

	// ListEvents retrieves every one-shot event in a calendar.
	ListEvents(ctx context.Context, calendarID string) ([]Event, error)

	// FindEventsByTitle retrieves the one-shot events in a calendar whose
	// title matches exactly. Titles are not unique; zero, one or many
	// events may match.
	FindEventsByTitle(ctx context.Context, calendarID, title string) ([]Event, error)

	// GetEvent retrieves a single event by id.
	// Returns an Error of type ErrNotFound when the id does not resolve.
	GetEvent(ctx context.Context, eventID string) (*Event, error)

	// ListRules retrieves every recurrence rule in a calendar.
	ListRules(ctx context.Context, calendarID string) ([]RecurrenceRule, error)

	// FindRulesByTitle retrieves the recurrence rules in a calendar whose
	// title matches exactly.
	FindRulesByTitle(ctx context.Context, calendarID, title string) ([]RecurrenceRule, error)

	// GetRule retrieves a single recurrence rule by id.
	// Returns an Error of type ErrNotFound when the id does not resolve.
	GetRule(ctx context.Context, ruleID string) (*RecurrenceRule, error)

	// PatchEvent overwrites exactly the fields selected by the patch,
	// leaving every other stored attribute untouched. An empty patch
	// succeeds without writing.
	PatchEvent(ctx context.Context, eventID string, patch EventPatch) error

	// PatchRule overwrites exactly the rule fields selected by the patch.
	PatchRule(ctx context.Context, ruleID string, patch RulePatch) error
}
