package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"techfest/internal/handler"
	"techfest/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	EventHandler       *handler.EventHandler
	TeamHandler        *handler.TeamHandler
	PaymentHandler     *handler.PaymentHandler
	TicketHandler      *handler.TicketHandler
	LeaderboardHandler *handler.LeaderboardHandler
	RedisClient        *redis.Client
	NewRelicApp        *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))

	// The payments endpoint is POST-only; anything else gets a 405 before
	// any gateway or database I/O.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, handler.PaymentErrorResponse{Error: "method not allowed"})
	})

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Event routes.
		events := v1.Group("/events")
		{
			events.GET("", deps.EventHandler.GetAll)
			events.GET("/:id", deps.EventHandler.GetEvent)
		}

		// Team registration routes.
		teams := v1.Group("/teams")
		{
			teams.POST("", deps.TeamHandler.Register)
			teams.GET("/:id", deps.TeamHandler.GetTeam)
		}

		// Payment routes: single action-dispatch endpoint driven by the
		// checkout widget.
		v1.POST("/payments", deps.PaymentHandler.HandleAction)

		// Ticket routes.
		v1.GET("/tickets/:teamId", deps.TicketHandler.GetTicket)

		// Leaderboard routes.
		leaderboard := v1.Group("/leaderboard")
		{
			leaderboard.GET("/:eventId", deps.LeaderboardHandler.GetLeaderboard)
			leaderboard.POST("/:eventId", deps.LeaderboardHandler.SubmitScore)
		}
	}

	return router
}
