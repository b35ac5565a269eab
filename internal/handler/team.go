package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"techfest/internal/domain"
	"techfest/internal/service"
)

// TeamHandler handles HTTP requests for team registration.
type TeamHandler struct {
	registrationService *service.RegistrationService
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(registrationService *service.RegistrationService) *TeamHandler {
	return &TeamHandler{registrationService: registrationService}
}

// RegisterTeamRequest is the HTTP request body for registering a team.
type RegisterTeamRequest struct {
	EventID     string   `json:"event_id"`
	TeamName    string   `json:"team_name"`
	CollegeName string   `json:"college_name"`
	TeamSize    int      `json:"team_size"`
	CreatedBy   string   `json:"created_by"`
	IsOnspot    bool     `json:"is_onspot,omitempty"`
	Members     []string `json:"members,omitempty"`
}

// TeamResponse is the HTTP response for team data.
type TeamResponse struct {
	ID          string   `json:"id"`
	EventID     string   `json:"event_id"`
	TeamName    string   `json:"team_name"`
	CollegeName string   `json:"college_name"`
	TeamSize    int      `json:"team_size"`
	CreatedBy   string   `json:"created_by"`
	IsOnspot    bool     `json:"is_onspot"`
	Members     []string `json:"members,omitempty"`
}

// Register handles POST /v1/teams
func (h *TeamHandler) Register(c *gin.Context) {
	var req RegisterTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	team, err := h.registrationService.RegisterTeam(c.Request.Context(), service.RegisterTeamRequest{
		EventID:     req.EventID,
		TeamName:    req.TeamName,
		CollegeName: req.CollegeName,
		TeamSize:    req.TeamSize,
		CreatedBy:   req.CreatedBy,
		IsOnspot:    req.IsOnspot,
		Members:     req.Members,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respondJSON(c, http.StatusCreated, toTeamResponse(team, req.Members))
}

// GetTeam handles GET /v1/teams/:id
func (h *TeamHandler) GetTeam(c *gin.Context) {
	team, members, err := h.registrationService.GetTeam(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.MemberName)
	}

	respondJSON(c, http.StatusOK, toTeamResponse(team, names))
}

func toTeamResponse(team *domain.Team, members []string) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		EventID:     team.EventID,
		TeamName:    team.TeamName,
		CollegeName: team.CollegeName,
		TeamSize:    team.TeamSize,
		CreatedBy:   team.CreatedBy,
		IsOnspot:    team.IsOnspot,
		Members:     members,
	}
}
