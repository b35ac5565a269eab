package repository

import (
	"context"

	"techfest/internal/domain"
)

// TeamRepository defines the persistence operations for teams.
type TeamRepository interface {
	// Create persists a new team and its members.
	Create(ctx context.Context, team *domain.Team, members []domain.TeamMember) error

	// GetByID retrieves a team by ID.
	GetByID(ctx context.Context, id string) (*domain.Team, error)

	// GetMembers retrieves the members of a team.
	GetMembers(ctx context.Context, teamID string) ([]domain.TeamMember, error)
}
