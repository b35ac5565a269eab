package domain

import "time"

// LeaderboardEntry is one team's score within an event.
type LeaderboardEntry struct {
	ID        string
	EventID   string
	TeamID    string
	Score     int
	Rank      int
	UpdatedAt time.Time
}
