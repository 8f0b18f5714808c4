package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"weddingrsvp/config"
	_ "weddingrsvp/docs"
	"weddingrsvp/internal/adapters/auth"
	"weddingrsvp/internal/adapters/whatsapp"
	httpdelivery "weddingrsvp/internal/delivery/http"
	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/delivery/http/middleware"
	"weddingrsvp/internal/delivery/http/web"
	"weddingrsvp/internal/repository/postgres"
	"weddingrsvp/internal/services"
)

// @title Wedding RSVP API
// @version 1.0
// @description Single-event wedding RSVP backend: guest search and confirmation, guest groups, gift registry, venue, and WhatsApp notifications.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// The structured logger is built from the config, so this is the one
		// failure reported through the plain logger.
		log.Fatalf("load config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.ApplySchema(db); err != nil {
		logger.Error("apply schema", "err", err)
		os.Exit(1)
	}

	guestRepo := postgres.NewGuestRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	giftRepo := postgres.NewGiftRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	adminRepo := postgres.NewAdminRepository(db)

	hasher := auth.NewBcryptHasher(0)
	tokenIssuer, tokenVerifier := auth.NewJWTManager(cfg.JWTSecret)
	messenger := whatsapp.NewSender(whatsapp.Config{
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioWhatsAppFrom,
	}, logger)
	renderer := whatsapp.NewMessageRenderer()

	notifySvc := services.NewNotificationService(guestRepo, venueRepo, messenger, renderer, cfg.PublicBaseURL, logger)
	authSvc := services.NewAuthService(adminRepo, hasher, tokenIssuer, cfg.TokenExpiry)
	searchSvc := services.NewSearchService(guestRepo, groupRepo)
	rsvpSvc := services.NewRSVPService(guestRepo, notifySvc, logger)
	guestSvc := services.NewGuestService(guestRepo, groupRepo)
	groupSvc := services.NewGroupService(groupRepo, guestRepo)
	giftSvc := services.NewGiftService(giftRepo)
	venueSvc := services.NewVenueService(venueRepo)
	statsSvc := services.NewStatsService(guestRepo, groupRepo, giftRepo)

	if err := authSvc.EnsureDefaultAdmin(ctx, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		logger.Error("seed admin", "err", err)
		os.Exit(1)
	}

	pages, err := web.NewHandler(logger, venueRepo, giftRepo)
	if err != nil {
		logger.Error("parse page templates", "err", err)
		os.Exit(1)
	}

	mux := httpdelivery.NewRouter(httpdelivery.Controllers{
		Auth:          controllers.NewAuthController(logger, authSvc),
		RSVP:          controllers.NewRSVPController(logger, searchSvc, rsvpSvc),
		Guests:        controllers.NewGuestController(logger, guestSvc),
		Groups:        controllers.NewGroupController(logger, groupSvc),
		Gifts:         controllers.NewGiftController(logger, giftSvc),
		Venue:         controllers.NewVenueController(logger, venueSvc),
		Dashboard:     controllers.NewDashboardController(logger, statsSvc, db),
		Notifications: controllers.NewNotificationController(logger, notifySvc),
		Pages:         pages,
	}, tokenVerifier, logger)

	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("listening", "port", cfg.Port, "env", cfg.Environment, "whatsapp_enabled", messenger.Enabled())
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
