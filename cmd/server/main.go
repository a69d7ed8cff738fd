package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tably-app/backoffice-service/internal/cache"
	"github.com/tably-app/backoffice-service/internal/config"
	"github.com/tably-app/backoffice-service/internal/db"
	"github.com/tably-app/backoffice-service/internal/db/repository"
	"github.com/tably-app/backoffice-service/internal/metrics"
	"github.com/tably-app/backoffice-service/internal/router"
	"github.com/tably-app/backoffice-service/internal/service"
	"github.com/tably-app/backoffice-service/internal/websockets"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger := newLogger(cfg.Server.Mode)

	metrics.Register()

	database, err := db.NewPostgres(cfg.Database, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	if err := database.Migrate(cfg.Database); err != nil {
		logger.Fatal().Err(err).Msg("failed to run database migrations")
	}

	// Redis is optional; without it playlist reads fall through to Postgres
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, playlist cache disabled")
			rdb = nil
		}
	}
	playlist := cache.NewPlaylistCache(rdb, time.Duration(cfg.Redis.TTLSeconds)*time.Second)

	if origin := cfg.Server.AllowedOrigin; origin != "" {
		websockets.SetCheckOrigin(func(r *http.Request) bool {
			return r.Header.Get("Origin") == origin
		})
	}

	hub := websockets.NewHub()
	go hub.Run()

	repos := repository.NewRepositories(database.DB)

	services := router.Services{
		Auth: service.NewAuthService(repos, service.JWTConfig{
			Secret:    cfg.JWT.Secret,
			ExpiresIn: cfg.JWT.ExpiresIn,
		}),
		Banner:    service.NewBannerService(repos, playlist, hub, logger),
		Promotion: service.NewPromotionService(repos, hub, cfg.Uploads.Dir, logger),
		Menu:      service.NewMenuService(repos),
		Tenant:    service.NewTenantService(repos, service.NewPlanCatalog(cfg.Billing), logger),
	}

	r := router.New(database, services, hub, logger)

	server := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: r,
	}

	go func() {
		logger.Info().Str("address", cfg.Server.Address).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited properly")
}

func newLogger(mode string) zerolog.Logger {
	if mode == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
