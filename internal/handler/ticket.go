package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	internalRedis "techfest/internal/redis"
	"techfest/internal/service"
)

// TicketHandler handles HTTP requests for tickets.
type TicketHandler struct {
	ticketService *service.TicketService
	cache         *internalRedis.CacheStore
}

// NewTicketHandler creates a new TicketHandler.
func NewTicketHandler(ticketService *service.TicketService, cache *internalRedis.CacheStore) *TicketHandler {
	return &TicketHandler{
		ticketService: ticketService,
		cache:         cache,
	}
}

// GetTicket handles GET /v1/tickets/:teamId
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ctx := c.Request.Context()
	teamID := c.Param("teamId")

	if h.cache != nil {
		cached, err := h.cache.GetTicket(ctx, teamID)
		if err != nil {
			log.Printf("ticket cache read failed: %v", err)
		}
		if cached != nil {
			respondJSON(c, http.StatusOK, TicketResponse{
				ID:         cached.ID,
				TeamID:     cached.TeamID,
				TicketCode: cached.TicketCode,
				PDFURL:     cached.PDFURL,
			})
			return
		}
	}

	ticket, err := h.ticketService.GetTicket(ctx, teamID)
	if err != nil {
		respondError(c, err)
		return
	}

	if h.cache != nil {
		err := h.cache.SetTicket(ctx, &internalRedis.CachedTicket{
			ID:         ticket.ID,
			TeamID:     ticket.TeamID,
			TicketCode: ticket.TicketCode,
			PDFURL:     ticket.PDFURL,
		})
		if err != nil {
			log.Printf("ticket cache write failed: %v", err)
		}
	}

	respondJSON(c, http.StatusOK, toTicketResponse(ticket))
}
