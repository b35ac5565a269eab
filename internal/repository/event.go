package repository

import (
	"context"

	"techfest/internal/domain"
)

// EventRepository defines the persistence operations for events.
// The payment core only reads events; writes happen administratively.
type EventRepository interface {
	// GetByID retrieves an event by ID.
	GetByID(ctx context.Context, id string) (*domain.Event, error)

	// GetAll retrieves all events.
	GetAll(ctx context.Context) ([]*domain.Event, error)
}
