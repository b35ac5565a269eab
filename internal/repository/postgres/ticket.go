package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techfest/internal/domain"
	"techfest/internal/repository"
)

// TicketRepository is a PostgreSQL implementation of repository.TicketRepository.
type TicketRepository struct {
	q Querier
}

// NewTicketRepository creates a new PostgreSQL ticket repository.
func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{q: db}
}

// UpsertByTeam inserts the ticket if the team has none, otherwise returns
// the existing row. The ON CONFLICT clause rides on the unique constraint
// over team_id, so two concurrent calls for the same team both land on the
// same single row.
func (r *TicketRepository) UpsertByTeam(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error) {
	query := `
		INSERT INTO tickets (id, team_id, ticket_code)
		VALUES ($1, $2, $3)
		ON CONFLICT (team_id) DO UPDATE SET team_id = tickets.team_id
		RETURNING id, team_id, ticket_code, COALESCE(pdf_url, ''), created_at
	`

	var result domain.Ticket
	err := r.q.QueryRowContext(ctx, query, ticket.ID, ticket.TeamID, ticket.TicketCode).Scan(
		&result.ID,
		&result.TeamID,
		&result.TicketCode,
		&result.PDFURL,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetByTeam retrieves the ticket for a team.
func (r *TicketRepository) GetByTeam(ctx context.Context, teamID string) (*domain.Ticket, error) {
	query := `
		SELECT id, team_id, ticket_code, COALESCE(pdf_url, ''), created_at
		FROM tickets WHERE team_id = $1
	`

	var ticket domain.Ticket
	err := r.q.QueryRowContext(ctx, query, teamID).Scan(
		&ticket.ID,
		&ticket.TeamID,
		&ticket.TicketCode,
		&ticket.PDFURL,
		&ticket.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &ticket, nil
}
