package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/domain"
	"techfest/internal/service"
)

// LeaderboardHandler handles HTTP requests for leaderboards.
type LeaderboardHandler struct {
	leaderboardService *service.LeaderboardService
}

// NewLeaderboardHandler creates a new LeaderboardHandler.
func NewLeaderboardHandler(leaderboardService *service.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: leaderboardService}
}

// SubmitScoreRequest is the HTTP request body for submitting a score.
type SubmitScoreRequest struct {
	TeamID string `json:"team_id"`
	Score  int    `json:"score"`
}

// LeaderboardEntryResponse is one row of a leaderboard response.
type LeaderboardEntryResponse struct {
	TeamID string `json:"team_id"`
	Score  int    `json:"score"`
	Rank   int    `json:"rank"`
}

// SubmitScore handles POST /v1/leaderboard/:eventId
func (h *LeaderboardHandler) SubmitScore(c *gin.Context) {
	var req SubmitScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	entry, err := h.leaderboardService.SubmitScore(c.Request.Context(), c.Param("eventId"), req.TeamID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, LeaderboardEntryResponse{
		TeamID: entry.TeamID,
		Score:  entry.Score,
		Rank:   entry.Rank,
	})
}

// GetLeaderboard handles GET /v1/leaderboard/:eventId
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	entries, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusOK, toLeaderboardResponse(entries))
}

func toLeaderboardResponse(entries []*domain.LeaderboardEntry) []LeaderboardEntryResponse {
	resp := make([]LeaderboardEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, LeaderboardEntryResponse{
			TeamID: e.TeamID,
			Score:  e.Score,
			Rank:   e.Rank,
		})
	}
	return resp
}
