package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/discoverypromo/raffle-admin-backend/api/routes"
	"github.com/discoverypromo/raffle-admin-backend/internal/authgate"
	"github.com/discoverypromo/raffle-admin-backend/internal/config"
	"github.com/discoverypromo/raffle-admin-backend/internal/handlers"
	mongorepo "github.com/discoverypromo/raffle-admin-backend/internal/repositories/mongodb"
	"github.com/discoverypromo/raffle-admin-backend/internal/services"
	mongostore "github.com/discoverypromo/raffle-admin-backend/internal/store/mongodb"
	jwtpkg "github.com/discoverypromo/raffle-admin-backend/pkg/jwt"
	"github.com/discoverypromo/raffle-admin-backend/pkg/mongodb"
	"github.com/discoverypromo/raffle-admin-backend/pkg/netprobe"
	"github.com/discoverypromo/raffle-admin-backend/pkg/version"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		log = log.Level(level)
	}
	log.Info().Str("commit", version.Commit).Str("buildTime", version.BuildTime).Msg("starting raffle admin backend")

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelConnect()
	mongoClient, err := mongodb.NewClient(connectCtx, cfg.MongoDB.URI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("error disconnecting from MongoDB")
		}
	}()
	db := mongoClient.Database(cfg.MongoDB.Database)

	docStore := mongostore.New(db)
	prober := netprobe.New(cfg.Probe.Address, cfg.Probe.Timeout)
	adminRepo := mongorepo.NewAdminUserRepository(db)
	tokens := jwtpkg.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiresIn)*time.Second)

	authService := services.NewAuthService(adminRepo, tokens, log)
	winnerService := services.NewWinnerService(docStore, prober, log)
	submissionService := services.NewSubmissionService(docStore, prober, cfg.Collections.Submissions, log)
	activityService := services.NewActivityService(docStore, prober, cfg.Collections.ActivityLog, log)

	// The auth state resolves in the background; gate-guarded navigations
	// arriving before it resolves wait for the first notification.
	go authService.ResolveInitialState(context.Background(), os.Getenv("ADMIN_SESSION_TOKEN"))
	gate := authgate.New(authService)

	handlerDeps := routes.HandlerDependencies{
		AuthHandler:       handlers.NewAuthHandler(authService),
		SubmissionHandler: handlers.NewSubmissionHandler(submissionService),
		WinnerHandler:     handlers.NewWinnerHandler(winnerService, activityService),
		ActivityHandler:   handlers.NewActivityHandler(activityService),
	}

	router := routes.SetupRouter(cfg, log, gate, tokens, handlerDeps)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
