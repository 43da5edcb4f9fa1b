// Package schedule exposes the calendar operations a UI layer calls: day and
// month queries, find-by-title, and ownership-checked partial updates.
//
// Every operation converts failures into its documented return value, an
// empty slice for queries and false for mutations, plus a log entry. Callers
// never receive an error value; from the return alone they cannot tell "no
// events" apart from an internal failure. That keeps views always renderable
// at the cost of diagnosability, which lives in the logs instead.
package schedule

import (
	"io"
	"log/slog"

	"github.com/blindspot/agenda/recurrence"
	"github.com/blindspot/agenda/storage"
)

// Display defaults for absent stored fields.
const (
	defaultTitle    = "Untitled Event"
	defaultCategory = "Uncategorized"
	defaultChange   = 1
)

// Service orchestrates queries and mutations over a storage.Store. It holds
// no mutable state of its own; concurrent callers may share one instance.
type Service struct {
	store  storage.Store
	engine *recurrence.Engine
	logger *slog.Logger
}

// New creates a Service on top of the given store. A nil logger disables
// logging.
func New(store storage.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{
		store:  store,
		engine: recurrence.NewEngine(),
		logger: logger,
	}
}
