package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techfest/internal/domain"
	"techfest/internal/repository"
)

// EventRepository is a PostgreSQL implementation of repository.EventRepository.
type EventRepository struct {
	q Querier
}

// NewEventRepository creates a new PostgreSQL event repository.
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{q: db}
}

// GetByID retrieves an event by ID.
func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT id, name, category, description, price_per_head, max_team_size, image_url, created_at
		FROM events WHERE id = $1
	`

	var event domain.Event
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&event.ID,
		&event.Name,
		&event.Category,
		&event.Description,
		&event.PricePerHead,
		&event.MaxTeamSize,
		&event.ImageURL,
		&event.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &event, nil
}

// GetAll retrieves all events.
func (r *EventRepository) GetAll(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT id, name, category, description, price_per_head, max_team_size, image_url, created_at
		FROM events ORDER BY created_at
	`

	rows, err := r.q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		var event domain.Event
		if err := rows.Scan(
			&event.ID,
			&event.Name,
			&event.Category,
			&event.Description,
			&event.PricePerHead,
			&event.MaxTeamSize,
			&event.ImageURL,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, &event)
	}

	return events, rows.Err()
}
