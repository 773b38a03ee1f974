package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mirgames/donate-api/internal/config"
	"github.com/mirgames/donate-api/internal/gateway"
	"github.com/mirgames/donate-api/internal/router"
	"github.com/mirgames/donate-api/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func applyMigrations(databaseURI string) error {
	db, err := sql.Open("pgx", databaseURI)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	log.Info().Msg("database migrations applied")
	return nil
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := applyMigrations(cfg.DatabaseURI); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	db, err := pgxpool.New(context.Background(), cfg.DatabaseURI)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	store, err := storage.NewStorage(db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create storage")
	}

	gatewayClient := gateway.NewClient(cfg.GatewayBaseURL, cfg.GatewayID, cfg.GatewaySecret, log.Logger)

	r, err := router.SetupRoutes(cfg, store, gatewayClient, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up routes")
	}

	srv := &http.Server{
		Addr:    cfg.RunAddr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", cfg.RunAddr).Msg("starting donation server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown did not finish cleanly")
	}
	log.Info().Msg("server stopped")
}
