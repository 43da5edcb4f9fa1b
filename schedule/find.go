package schedule

import "context"

// localeLayout matches the "M/D/YYYY, h:mm:ss AM" shape views expect.
const localeLayout = "1/2/2006, 3:04:05 PM"

// EventView is a display projection of a stored event, with start and end
// rendered as locale-formatted strings.
type EventView struct {
	ID          string
	Title       string
	Description string
	Location    string
	StartTime   string
	EndTime     string
	Category    string
}

// FindByTitle returns display views of the user's events whose title matches
// exactly. Titles are not unique, so zero, one or many views may come back;
// failures come back as an empty sequence.
func (s *Service) FindByTitle(ctx context.Context, userID, title string) []EventView {
	views := []EventView{}

	calendarID, err := s.store.GetCalendarID(ctx, userID)
	if err != nil {
		s.logger.Warn("calendar lookup failed", "user_id", userID, "error", err)
		return views
	}

	events, err := s.store.FindEventsByTitle(ctx, calendarID, title)
	if err != nil {
		s.logger.Warn("title search failed", "calendar_id", calendarID, "title", title, "error", err)
		return views
	}

	for _, ev := range events {
		views = append(views, EventView{
			ID:          ev.ID,
			Title:       ev.Title,
			Description: ev.Description,
			Location:    ev.Location,
			StartTime:   ev.StartTime.Format(localeLayout),
			EndTime:     ev.EndTime.Format(localeLayout),
			Category:    ev.Category,
		})
	}
	return views
}
