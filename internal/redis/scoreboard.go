package redis

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const scoreboardKeyPrefix = "scoreboard:"

// TeamScore represents a team's position on an event scoreboard.
type TeamScore struct {
	TeamID string
	Score  int
	Rank   int
}

// ScoreboardStore maintains per-event sorted sets of team scores so
// leaderboard reads don't hit PostgreSQL on every request.
type ScoreboardStore struct {
	client *redis.Client
}

// NewScoreboardStore creates a new ScoreboardStore.
func NewScoreboardStore(client *redis.Client) *ScoreboardStore {
	return &ScoreboardStore{client: client}
}

// SetScore records a team's score using ZADD.
func (s *ScoreboardStore) SetScore(ctx context.Context, eventID, teamID string, score int) error {
	return s.client.ZAdd(ctx, scoreboardKeyPrefix+eventID, redis.Z{
		Score:  float64(score),
		Member: teamID,
	}).Err()
}

// TopTeams returns teams for an event ordered by score descending.
func (s *ScoreboardStore) TopTeams(ctx context.Context, eventID string, limit int64) ([]TeamScore, error) {
	results, err := s.client.ZRevRangeWithScores(ctx, scoreboardKeyPrefix+eventID, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]TeamScore, 0, len(results))
	for i, r := range results {
		teamID, _ := r.Member.(string)
		scores = append(scores, TeamScore{
			TeamID: teamID,
			Score:  int(r.Score),
			Rank:   i + 1,
		})
	}

	return scores, nil
}

// RemoveTeam removes a team from an event scoreboard.
func (s *ScoreboardStore) RemoveTeam(ctx context.Context, eventID, teamID string) error {
	return s.client.ZRem(ctx, scoreboardKeyPrefix+eventID, teamID).Err()
}
