package service

import (
	"context"
	"log"

	"techfest/internal/domain"
	internalRedis "techfest/internal/redis"
	"techfest/internal/repository"
)

// LeaderboardService maintains event leaderboards. PostgreSQL is the
// source of truth; the Redis scoreboard is a best-effort read accelerator
// and is rebuilt from the database on cache miss.
type LeaderboardService struct {
	leaderboardRepo repository.LeaderboardRepository
	scoreboard      internalRedis.ScoreboardStoreInterface
}

// NewLeaderboardService creates a new LeaderboardService.
func NewLeaderboardService(
	leaderboardRepo repository.LeaderboardRepository,
	scoreboard internalRedis.ScoreboardStoreInterface,
) *LeaderboardService {
	return &LeaderboardService{
		leaderboardRepo: leaderboardRepo,
		scoreboard:      scoreboard,
	}
}

// SubmitScore records a team's score for an event.
func (s *LeaderboardService) SubmitScore(ctx context.Context, eventID, teamID string, score int) (*domain.LeaderboardEntry, error) {
	if eventID == "" {
		return nil, ErrInvalidEventID
	}
	if teamID == "" {
		return nil, ErrInvalidTeamID
	}
	if score < 0 {
		return nil, ErrInvalidScore
	}

	entry, err := s.leaderboardRepo.UpsertScore(ctx, eventID, teamID, score)
	if err != nil {
		return nil, err
	}

	if s.scoreboard != nil {
		if err := s.scoreboard.SetScore(ctx, eventID, teamID, score); err != nil {
			// Cache write failure only degrades read latency.
			log.Printf("scoreboard update failed for event %s: %v", eventID, err)
		}
	}

	return entry, nil
}

// GetLeaderboard returns all entries for an event ordered by rank.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, eventID string) ([]*domain.LeaderboardEntry, error) {
	if eventID == "" {
		return nil, ErrInvalidEventID
	}

	return s.leaderboardRepo.ListByEvent(ctx, eventID)
}
