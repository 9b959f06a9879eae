package domain

import (
	"context"
	"time"
)

// Event represents a calendar event. Optional text fields are nil when absent;
// empty-after-trim values are normalized to nil before storage.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	ImageURL    *string   `json:"imageUrl"`
	Speaker     *string   `json:"speaker"`
	Location    *string   `json:"location"`
	Platform    *string   `json:"platform"`
	URL         *string   `json:"url"`
	IsOnline    bool      `json:"isOnline"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TimeWindow is a caller-supplied inclusive [Start, End] interval used to
// filter events by temporal intersection.
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the event interval [evStart, evEnd] intersects the
// window, bounds inclusive. This single predicate replaces the three-clause OR
// (start in window, end in window, event spans window) and is equivalent to it.
func Overlaps(evStart, evEnd time.Time, win TimeWindow) bool {
	return !evStart.After(win.End) && !evEnd.Before(win.Start)
}

// timestampLayouts are the accepted formats for event dates and window bounds,
// most specific first. Covers RFC3339, RFC3339 without seconds, the HTML
// datetime-local format, and bare dates.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses s against the accepted layouts. Layouts without a zone
// are interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.UTC)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// EventInput carries the client-supplied fields for a create or update. Dates
// arrive as raw strings and are parsed during validation.
type EventInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	ImageURL    string `json:"imageUrl"`
	Speaker     string `json:"speaker"`
	Location    string `json:"location"`
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	IsOnline    bool   `json:"isOnline"`
}

// EventRepository defines the interface for event storage.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns events ordered ascending by start date. A nil window
	// returns every event; a non-nil window returns events whose interval
	// intersects it.
	List(ctx context.Context, window *TimeWindow) ([]*Event, error)
	// Update overwrites every mutable field of the event with the given id.
	Update(ctx context.Context, id string, event *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for the event lifecycle.
type EventService interface {
	Create(ctx context.Context, in EventInput) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, window *TimeWindow) ([]*Event, error)
	Update(ctx context.Context, id string, in EventInput) (*Event, error)
	Delete(ctx context.Context, id string) error
}
