package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheStore handles entity caching in Redis.
type CacheStore struct {
	client *redis.Client
}

// NewCacheStore creates a new CacheStore.
func NewCacheStore(client *redis.Client) *CacheStore {
	return &CacheStore{client: client}
}

// Cache TTL constants
const (
	EventCacheTTL     = 5 * time.Minute  // Event data changes rarely during the fest
	EventListCacheTTL = 1 * time.Minute  // List is the hottest read on the site
	TicketCacheTTL    = 10 * time.Minute // Tickets are immutable once issued
)

// Key prefixes
const (
	eventCachePrefix  = "cache:event:"
	eventListCacheKey = "cache:events"
	ticketCachePrefix = "cache:ticket:"
)

// CachedEvent represents a cached event entity.
type CachedEvent struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	PricePerHead float64 `json:"price_per_head"`
	MaxTeamSize  int     `json:"max_team_size"`
	ImageURL     string  `json:"image_url"`
}

// CachedTicket represents a cached ticket entity.
type CachedTicket struct {
	ID         string `json:"id"`
	TeamID     string `json:"team_id"`
	TicketCode string `json:"ticket_code"`
	PDFURL     string `json:"pdf_url,omitempty"`
}

// GetEvent retrieves an event from cache.
func (s *CacheStore) GetEvent(ctx context.Context, eventID string) (*CachedEvent, error) {
	key := eventCachePrefix + eventID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var event CachedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// SetEvent stores an event in cache.
func (s *CacheStore) SetEvent(ctx context.Context, event *CachedEvent) error {
	key := eventCachePrefix + event.ID
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, EventCacheTTL).Err()
}

// GetEventList retrieves the full event list from cache.
func (s *CacheStore) GetEventList(ctx context.Context) ([]CachedEvent, error) {
	data, err := s.client.Get(ctx, eventListCacheKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var events []CachedEvent
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// SetEventList stores the full event list in cache.
func (s *CacheStore) SetEventList(ctx context.Context, events []CachedEvent) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, eventListCacheKey, data, EventListCacheTTL).Err()
}

// InvalidateEvent removes an event and the list from cache.
func (s *CacheStore) InvalidateEvent(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, eventCachePrefix+eventID).Err(); err != nil {
		return err
	}
	return s.client.Del(ctx, eventListCacheKey).Err()
}

// GetTicket retrieves a ticket from cache by team ID.
func (s *CacheStore) GetTicket(ctx context.Context, teamID string) (*CachedTicket, error) {
	key := ticketCachePrefix + teamID
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var ticket CachedTicket
	if err := json.Unmarshal(data, &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// SetTicket stores a ticket in cache keyed by team ID.
func (s *CacheStore) SetTicket(ctx context.Context, ticket *CachedTicket) error {
	key := ticketCachePrefix + ticket.TeamID
	data, err := json.Marshal(ticket)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, data, TicketCacheTTL).Err()
}
