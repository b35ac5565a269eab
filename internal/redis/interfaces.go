package redis

import "context"

// ScoreboardStoreInterface defines the interface for scoreboard operations.
type ScoreboardStoreInterface interface {
	SetScore(ctx context.Context, eventID, teamID string, score int) error
	TopTeams(ctx context.Context, eventID string, limit int64) ([]TeamScore, error)
	RemoveTeam(ctx context.Context, eventID, teamID string) error
}

// Ensure concrete types implement interfaces.
var (
	_ ScoreboardStoreInterface = (*ScoreboardStore)(nil)
)
