package repository

import (
	"context"

	"techfest/internal/domain"
)

// TicketRepository defines the persistence operations for tickets.
type TicketRepository interface {
	// UpsertByTeam inserts the ticket if the team has none, otherwise
	// returns the existing ticket. The unique constraint on team_id
	// guarantees at most one ticket per team under concurrent calls.
	UpsertByTeam(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)

	// GetByTeam retrieves the ticket for a team.
	GetByTeam(ctx context.Context, teamID string) (*domain.Ticket, error)
}
