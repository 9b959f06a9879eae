package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"communitycalendar/internal/domain"
)

// maxImageURLLength guards against inline-encoded (base64) images being
// smuggled into the image URL field.
const maxImageURLLength = 2048

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

// optional trims s and returns nil when nothing remains, so absent and
// blank-after-trim fields are stored the same way.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// Create validates the input and persists a new event. Checks run in a fixed
// order and the first failure wins: required fields, image URL length, date
// parsing. Start after end is deliberately not rejected.
func (s *eventService) Create(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if in.Title == "" || in.StartDate == "" || in.EndDate == "" {
		return nil, domain.ErrMissingFields
	}
	if len(in.ImageURL) > maxImageURLLength {
		return nil, domain.ErrImageURLTooLong
	}
	start, err := domain.ParseTimestamp(in.StartDate)
	if err != nil {
		return nil, domain.ErrInvalidDateFormat
	}
	end, err := domain.ParseTimestamp(in.EndDate)
	if err != nil {
		return nil, domain.ErrInvalidDateFormat
	}

	now := time.Now()
	event := &domain.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: optional(in.Description),
		StartDate:   start,
		EndDate:     end,
		ImageURL:    optional(in.ImageURL),
		Speaker:     optional(in.Speaker),
		Location:    optional(in.Location),
		Platform:    optional(in.Platform),
		URL:         optional(in.URL),
		IsOnline:    in.IsOnline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.GetByID(ctx, id)
}

func (s *eventService) List(ctx context.Context, window *domain.TimeWindow) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx, window)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

// Update overwrites every mutable field of the event. It applies only the
// weaker historical subset of validation: fields are trimmed and dates must
// parse; there is no required-field or image URL length check, and an unknown
// id is not reported separately from other failures.
func (s *eventService) Update(ctx context.Context, id string, in domain.EventInput) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	start, err := domain.ParseTimestamp(in.StartDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	end, err := domain.ParseTimestamp(in.EndDate)
	if err != nil {
		return nil, fmt.Errorf("parse end date: %w", err)
	}

	event := &domain.Event{
		Title:       strings.TrimSpace(in.Title),
		Description: optional(in.Description),
		StartDate:   start,
		EndDate:     end,
		ImageURL:    optional(in.ImageURL),
		Speaker:     optional(in.Speaker),
		Location:    optional(in.Location),
		Platform:    optional(in.Platform),
		URL:         optional(in.URL),
		IsOnline:    in.IsOnline,
		UpdatedAt:   time.Now(),
	}
	updated, err := s.eventRepo.Update(ctx, id, event)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	return s.eventRepo.Delete(ctx, id)
}
