package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mooh-ads/internal/adapter/assets"
	httpadapter "mooh-ads/internal/adapter/http"
	"mooh-ads/internal/adapter/metrics"
	"mooh-ads/internal/adapter/postgres"
	"mooh-ads/internal/adapter/usecase"
	"mooh-ads/internal/db"
)

func (a *app) serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}
}

// serve optionally runs database migrations, initializes the database
// pool and repositories, then starts the HTTP server. On receiving a
// termination signal it gracefully shuts down the server.
func (a *app) serve(ctx context.Context) error {
	cfg, logger := a.cfg, a.logger

	// Optionally run migrations if configured.
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	loc, err := cfg.Dispatch.Location()
	if err != nil {
		return fmt.Errorf("dispatch timezone: %w", err)
	}

	collector := metrics.NewCollector()
	opts := []usecase.Option{
		usecase.WithLogger(logger),
		usecase.WithLocation(loc),
		usecase.WithMetrics(collector),
		usecase.WithFallback(
			assets.NewFallback(cfg.Dispatch.FallbackAssets),
			cfg.Dispatch.FallbackRadiusKm,
			cfg.Dispatch.FallbackRunTime,
		),
	}
	if cfg.Assets.Enabled() {
		presigner, err := assets.NewS3Presigner(ctx, cfg.Assets)
		if err != nil {
			return err
		}
		opts = append(opts, usecase.WithAssets(presigner))
	}

	svc := usecase.NewFleetUseCase(
		postgres.NewCampaignRepository(pool),
		postgres.NewTraceRepository(pool),
		opts...,
	)

	handler := httpadapter.NewHandler(svc, logger, collector.Handler(), cfg.HTTP.MaxBodyBytes)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}
