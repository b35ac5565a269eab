package domain

import "time"

// EventCategory classifies an event.
type EventCategory string

const (
	EventCategoryTech    EventCategory = "tech"
	EventCategoryNonTech EventCategory = "non-tech"
)

// Event is a fest event that teams register for. Read-only to the
// payment core: pricing data comes from here and is never mutated.
type Event struct {
	ID           string
	Name         string
	Category     EventCategory
	Description  string
	PricePerHead float64 // rupees per member
	MaxTeamSize  int
	ImageURL     string
	CreatedAt    time.Time
}
