package repository

import (
	"context"

	"techfest/internal/domain"
)

// LeaderboardRepository defines the persistence operations for leaderboards.
type LeaderboardRepository interface {
	// UpsertScore inserts or updates a team's score for an event.
	UpsertScore(ctx context.Context, eventID, teamID string, score int) (*domain.LeaderboardEntry, error)

	// ListByEvent retrieves all entries for an event ordered by score
	// descending, with ranks assigned.
	ListByEvent(ctx context.Context, eventID string) ([]*domain.LeaderboardEntry, error)
}
