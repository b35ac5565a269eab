package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"techfest/internal/app"
	"techfest/internal/config"
	"techfest/internal/gateway"
	"techfest/internal/handler"
	internalRedis "techfest/internal/redis"
	"techfest/internal/repository/postgres"
	"techfest/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	if !cfg.Razorpay.Configured() {
		// Boot anyway: the payments endpoint answers 500 with a generic
		// message until credentials arrive, everything else still works.
		log.Println("WARNING: Razorpay credentials not configured; payments will fail")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before database so we can instrument DB).
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s (with DB instrumentation)", cfg.NewRelic.AppName)
		}
	}

	// Initialize database with New Relic instrumentation.
	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server := wireServer(db, redisClient, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)
	scoreboardStore := internalRedis.NewScoreboardStore(redisClient)

	// Initialize repositories.
	eventRepo := postgres.NewEventRepository(db)
	teamRepo := postgres.NewTeamRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	leaderboardRepo := postgres.NewLeaderboardRepository(db)

	// Initialize gateway client.
	razorpayClient := gateway.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Initialize services.
	notificationService := service.NewNotificationService()
	pricingService := service.NewPricingService(teamRepo, eventRepo)
	ticketService := service.NewTicketService(paymentRepo, ticketRepo, notificationService)
	paymentService := service.NewPaymentService(pricingService, paymentRepo, ticketService, razorpayClient, cfg.Razorpay, notificationService)
	registrationService := service.NewRegistrationService(teamRepo, eventRepo, notificationService)
	leaderboardService := service.NewLeaderboardService(leaderboardRepo, scoreboardStore)

	// Initialize handlers.
	eventHandler := handler.NewEventHandler(eventRepo, cacheStore)
	teamHandler := handler.NewTeamHandler(registrationService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	ticketHandler := handler.NewTicketHandler(ticketService, cacheStore)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		EventHandler:       eventHandler,
		TeamHandler:        teamHandler,
		PaymentHandler:     paymentHandler,
		TicketHandler:      ticketHandler,
		LeaderboardHandler: leaderboardHandler,
		RedisClient:        redisClient,
		NewRelicApp:        nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
