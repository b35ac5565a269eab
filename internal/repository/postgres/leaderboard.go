package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"techfest/internal/domain"
)

// LeaderboardRepository is a PostgreSQL implementation of repository.LeaderboardRepository.
type LeaderboardRepository struct {
	q Querier
}

// NewLeaderboardRepository creates a new PostgreSQL leaderboard repository.
func NewLeaderboardRepository(db *sql.DB) *LeaderboardRepository {
	return &LeaderboardRepository{q: db}
}

// UpsertScore inserts or updates a team's score for an event.
func (r *LeaderboardRepository) UpsertScore(ctx context.Context, eventID, teamID string, score int) (*domain.LeaderboardEntry, error) {
	query := `
		INSERT INTO leaderboard (id, event_id, team_id, score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id, team_id) DO UPDATE SET score = EXCLUDED.score, updated_at = NOW()
		RETURNING id, event_id, team_id, score, updated_at
	`

	var entry domain.LeaderboardEntry
	err := r.q.QueryRowContext(ctx, query, uuid.New().String(), eventID, teamID, score).Scan(
		&entry.ID,
		&entry.EventID,
		&entry.TeamID,
		&entry.Score,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

// ListByEvent retrieves all entries for an event ordered by score descending.
// Ranks are computed in the query so ties share a rank.
func (r *LeaderboardRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.LeaderboardEntry, error) {
	query := `
		SELECT id, event_id, team_id, score, RANK() OVER (ORDER BY score DESC), updated_at
		FROM leaderboard WHERE event_id = $1
		ORDER BY score DESC
	`

	rows, err := r.q.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.LeaderboardEntry
	for rows.Next() {
		var entry domain.LeaderboardEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.TeamID,
			&entry.Score,
			&entry.Rank,
			&entry.UpdatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
