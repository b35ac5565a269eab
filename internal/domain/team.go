package domain

import "time"

// Team is a registered group for one event.
// Immutable once a payment exists, except administratively.
type Team struct {
	ID          string
	EventID     string
	TeamName    string
	CollegeName string
	TeamSize    int
	CreatedBy   string
	IsOnspot    bool
	CreatedAt   time.Time
}

// TeamMember is a named member of a team.
type TeamMember struct {
	ID         string
	TeamID     string
	MemberName string
}
