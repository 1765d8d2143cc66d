package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bhv360/platform/internal/activation"
	"github.com/bhv360/platform/internal/auth"
	"github.com/bhv360/platform/internal/catalog"
	"github.com/bhv360/platform/internal/config"
	"github.com/bhv360/platform/internal/license"
	"github.com/bhv360/platform/internal/server"
	"github.com/bhv360/platform/internal/store/postgres"
	redisstore "github.com/bhv360/platform/internal/store/redis"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	// Initialize structured logging from environment.
	logLevel := os.Getenv("BHV360_LOG_LEVEL")
	level, parseErr := zerolog.ParseLevel(logLevel)
	if parseErr != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	logFormat := os.Getenv("BHV360_LOG_FORMAT")
	if logFormat == "text" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	ctx := context.Background()

	// Load configuration from environment.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Database.MaxConns < 0 || cfg.Database.MaxConns > math.MaxInt32 {
		return fmt.Errorf("database max_conns %d out of int32 range", cfg.Database.MaxConns)
	}

	// Connect to PostgreSQL.
	store, err := postgres.New(ctx, cfg.Database.DSN(), int32(cfg.Database.MaxConns)) //nolint:gosec // bounds checked above
	if err != nil {
		return err
	}
	defer store.Close()

	// Connect to Redis.
	pubsub, err := redisstore.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return err
	}
	defer pubsub.Close()

	// The built-in module catalog. Validated at load; a malformed catalog is a
	// programming error and panics before the server accepts traffic.
	cat := catalog.Default()
	log.Info().Int("modules", cat.Len()).Msg("module catalog loaded")

	// Create services. Self-hosted installs with a configured license get
	// enterprise-tier modules gated on it; cloud installs skip the check.
	authSvc := auth.NewService(store.Users(), store.Tenants(), cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)

	var activationOpts []activation.Option
	if cfg.SelfHosted && cfg.License.Org != "" {
		v := license.NewValidator(&license.License{
			Org:          cfg.License.Org,
			MaxUsers:     cfg.License.MaxUsers,
			MaxBuildings: cfg.License.MaxBuildings,
			Modules:      cfg.License.Modules,
			ExpiresAt:    cfg.License.ExpiresAt,
		})
		activationOpts = append(activationOpts, activation.WithLicense(v))
		log.Info().Str("org", cfg.License.Org).Time("expires", cfg.License.ExpiresAt).Msg("deployment license loaded")
	}
	activationSvc := activation.NewService(cat, store.Activations(), store.Tenants(), pubsub, activationOpts...)

	// Graceful shutdown on SIGINT / SIGTERM.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Create HTTP server with all routes wired.
	srv := server.New(ctx, cfg, store, pubsub, authSvc, activationSvc)

	// Start server in background goroutine.
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("starting server")
		if startErr := srv.Start(ctx); startErr != nil {
			log.Error().Err(startErr).Msg("server error")
		}
	}()

	// Block until shutdown signal.
	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
		return shutdownErr
	}

	log.Info().Msg("stopped")
	return nil
}
