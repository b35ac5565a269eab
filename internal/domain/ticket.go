package domain

import "time"

// Ticket is proof of paid registration for a team. Exactly one ticket
// exists per team, enforced by a unique constraint on TeamID.
type Ticket struct {
	ID         string
	TeamID     string
	TicketCode string
	PDFURL     string // optional rendered artifact
	CreatedAt  time.Time
}
