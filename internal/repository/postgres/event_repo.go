package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"communitycalendar/internal/domain"
)

const eventColumns = `id, title, description, start_date, end_date, image_url, speaker, location, platform, url, is_online, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, imageNull, speakerNull, locNull, platNull, urlNull sql.NullString
	err := row.Scan(
		&e.ID, &e.Title, &descNull, &e.StartDate, &e.EndDate,
		&imageNull, &speakerNull, &locNull, &platNull, &urlNull,
		&e.IsOnline, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if imageNull.Valid {
		e.ImageURL = &imageNull.String
	}
	if speakerNull.Valid {
		e.Speaker = &speakerNull.String
	}
	if locNull.Valid {
		e.Location = &locNull.String
	}
	if platNull.Valid {
		e.Platform = &platNull.String
	}
	if urlNull.Valid {
		e.URL = &urlNull.String
	}
	return e, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	e.ID = uuid.NewString()
	query := `
		INSERT INTO events (id, title, description, start_date, end_date, image_url, speaker, location, platform, url, is_online, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, nullString(e.Description), e.StartDate, e.EndDate,
		nullString(e.ImageURL), nullString(e.Speaker), nullString(e.Location),
		nullString(e.Platform), nullString(e.URL), e.IsOnline, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, window *domain.TimeWindow) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_date ASC
	`
	args := []interface{}{}
	if window != nil {
		// Interval intersection, bounds inclusive.
		query = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE start_date <= $2 AND end_date >= $1
		ORDER BY start_date ASC
	`
		args = append(args, window.Start, window.End)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, e *domain.Event) (*domain.Event, error) {
	query := `
		UPDATE events
		SET title = $1, description = $2, start_date = $3, end_date = $4, image_url = $5,
		    speaker = $6, location = $7, platform = $8, url = $9, is_online = $10, updated_at = $11
		WHERE id = $12
		RETURNING ` + eventColumns + `
	`
	updated, err := scanEvent(r.DB.QueryRowContext(ctx, query,
		e.Title, nullString(e.Description), e.StartDate, e.EndDate, nullString(e.ImageURL),
		nullString(e.Speaker), nullString(e.Location), nullString(e.Platform), nullString(e.URL),
		e.IsOnline, e.UpdatedAt, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
