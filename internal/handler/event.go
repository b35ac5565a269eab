package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/domain"
	internalRedis "techfest/internal/redis"
	"techfest/internal/repository"
)

// EventHandler handles HTTP requests for events.
type EventHandler struct {
	eventRepo repository.EventRepository
	cache     *internalRedis.CacheStore
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(eventRepo repository.EventRepository, cache *internalRedis.CacheStore) *EventHandler {
	return &EventHandler{
		eventRepo: eventRepo,
		cache:     cache,
	}
}

// EventResponse is the HTTP response for event data.
type EventResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	PricePerHead float64 `json:"price_per_head"`
	MaxTeamSize  int     `json:"max_team_size"`
	ImageURL     string  `json:"image_url,omitempty"`
}

// GetAll handles GET /v1/events
func (h *EventHandler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()

	if h.cache != nil {
		cached, err := h.cache.GetEventList(ctx)
		if err != nil {
			log.Printf("event list cache read failed: %v", err)
		}
		if cached != nil {
			respondJSON(c, http.StatusOK, cachedListToResponse(cached))
			return
		}
	}

	events, err := h.eventRepo.GetAll(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.SetEventList(ctx, eventsToCached(events)); err != nil {
			log.Printf("event list cache write failed: %v", err)
		}
	}

	resp := make([]EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventResponse(e))
	}
	respondJSON(c, http.StatusOK, resp)
}

// GetEvent handles GET /v1/events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	ctx := c.Request.Context()
	eventID := c.Param("id")

	if h.cache != nil {
		cached, err := h.cache.GetEvent(ctx, eventID)
		if err != nil {
			log.Printf("event cache read failed: %v", err)
		}
		if cached != nil {
			respondJSON(c, http.StatusOK, cachedToResponse(cached))
			return
		}
	}

	event, err := h.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cache != nil {
		if err := h.cache.SetEvent(ctx, eventToCached(event)); err != nil {
			log.Printf("event cache write failed: %v", err)
		}
	}

	respondJSON(c, http.StatusOK, toEventResponse(event))
}

func toEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Category:     string(e.Category),
		Description:  e.Description,
		PricePerHead: e.PricePerHead,
		MaxTeamSize:  e.MaxTeamSize,
		ImageURL:     e.ImageURL,
	}
}

func eventToCached(e *domain.Event) *internalRedis.CachedEvent {
	return &internalRedis.CachedEvent{
		ID:           e.ID,
		Name:         e.Name,
		Category:     string(e.Category),
		Description:  e.Description,
		PricePerHead: e.PricePerHead,
		MaxTeamSize:  e.MaxTeamSize,
		ImageURL:     e.ImageURL,
	}
}

func eventsToCached(events []*domain.Event) []internalRedis.CachedEvent {
	cached := make([]internalRedis.CachedEvent, 0, len(events))
	for _, e := range events {
		cached = append(cached, *eventToCached(e))
	}
	return cached
}

func cachedToResponse(e *internalRedis.CachedEvent) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Name:         e.Name,
		Category:     e.Category,
		Description:  e.Description,
		PricePerHead: e.PricePerHead,
		MaxTeamSize:  e.MaxTeamSize,
		ImageURL:     e.ImageURL,
	}
}

func cachedListToResponse(events []internalRedis.CachedEvent) []EventResponse {
	resp := make([]EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, cachedToResponse(&events[i]))
	}
	return resp
}
