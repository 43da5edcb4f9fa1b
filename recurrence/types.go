package recurrence

import "time"

// SourceKind tells whether an occurrence came from a stored one-shot event
// or was synthesized from a recurrence rule.
type SourceKind int

const (
	SourceOneShot SourceKind = iota
	SourceRecurring
)

// String provides a human-readable representation of the SourceKind.
func (k SourceKind) String() string {
	switch k {
	case SourceOneShot:
		return "OneShot"
	case SourceRecurring:
		return "Recurring"
	default:
		return "Unknown"
	}
}

// Occurrence is a concrete, dated instance of an event. Occurrences are
// query-time values only; nothing stores them. For a recurring source the ID
// is derived from the rule id and the occurrence date, so repeated queries
// against the same date produce the same id and different dates of the same
// rule stay distinguishable.
type Occurrence struct {
	ID          string
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	Category    string
	Change      int
	Source      SourceKind
}
