package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"gaia/internal/adapter/connector"
	httpadapter "gaia/internal/adapter/http"
	"gaia/internal/adapter/postgres"
	"gaia/internal/adapter/usecase"
	"gaia/internal/auth"
	"gaia/internal/config"
	"gaia/internal/crypto"
	"gaia/internal/db"
)

// main loads configuration, optionally runs migrations and seeding,
// initializes the database pool and repositories, wires the services and
// starts the HTTP server. On receiving a termination signal it gracefully
// shuts the server down.
func main() {
	// A .env file is a development convenience; its absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Psql.RunSeed {
		if err = db.Seed(ctx, pool); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	users := postgres.NewUserRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	accessLogs := postgres.NewAccessLogRepository(pool)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.TokenTTL, cfg.Auth.GuestTokenTTL)
	cipher := crypto.NewBlobCipher(cfg.Auth.AESKey)
	metrics := usecase.NewMetricsGenerator(rand.NewSource(time.Now().UnixNano()))

	handler := httpadapter.NewHandler(httpadapter.Deps{
		Auth:        usecase.NewAuthUseCase(users, tokens),
		Keys:        usecase.NewKeyUseCase(users, accessLogs, cipher, logger),
		Campaigns:   usecase.NewCampaignUseCase(campaigns, accessLogs, connector.DefaultSet(), metrics, logger),
		Admin:       users,
		Tokens:      tokens,
		Logs:        accessLogs,
		Logger:      logger,
		AdminToken:  cfg.Auth.AdminToken,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
