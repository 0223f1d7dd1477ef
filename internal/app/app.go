package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/morse-resistance/internal/config"
	"github.com/heartmarshall/morse-resistance/internal/transport/middleware"
	"github.com/heartmarshall/morse-resistance/internal/transport/rest"
)

// rateLimiterCleanup is how often idle rate-limit buckets are swept.
const rateLimiterCleanup = time.Minute

// Run starts the HTTP API and blocks until ctx is cancelled, then shuts the
// server down gracefully within cfg.Server.ShutdownTimeout. The database is
// optional: without a DSN only inline-dictionary decodes are served.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("database", cfg.Database.Enabled()),
	)

	store, err := OpenStore(ctx, cfg.Database, true, logger)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	rl := middleware.NewRateLimiter(rateLimiterCleanup)
	defer rl.Stop()

	srv := rest.NewServer(
		net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		newRouter(cfg, logger, store, rl),
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		cfg.Server.IdleTimeout,
	)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

func newRouter(cfg *config.Config, logger *slog.Logger, store *Store, rl *middleware.RateLimiter) http.Handler {
	deps := rest.RouterDeps{
		Logger:          logger,
		Decode:          rest.NewDecodeHandler(NewDecoderService(logger, cfg.Decoder, store), logger),
		RateLimiter:     rl,
		DecodePerMinute: cfg.Server.DecodePerMinute,
		MaxBodyBytes:    cfg.Server.MaxBodyBytes,
	}

	if store != nil {
		deps.Health = rest.NewHealthHandler(store.Pool, BuildVersion())
		deps.WordLists = rest.NewWordListHandler(NewWordListService(logger, store), logger)
	} else {
		deps.Health = rest.NewHealthHandler(nil, BuildVersion())
	}

	return rest.NewRouter(deps)
}
