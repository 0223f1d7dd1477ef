package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/morse-resistance/internal/adapter/postgres"
	"github.com/heartmarshall/morse-resistance/internal/adapter/postgres/decoderun"
	"github.com/heartmarshall/morse-resistance/internal/adapter/postgres/wordlist"
	"github.com/heartmarshall/morse-resistance/internal/config"
	decodersvc "github.com/heartmarshall/morse-resistance/internal/service/decoder"
	wordlistsvc "github.com/heartmarshall/morse-resistance/internal/service/wordlist"
)

// Store bundles the PostgreSQL-backed repositories. A nil *Store means no
// database is configured.
type Store struct {
	Pool      *pgxpool.Pool
	WordLists *wordlist.Repo
	Runs      *decoderun.Repo
}

// OpenStore connects to the configured database, optionally applies
// pending migrations, and builds the repositories. It returns (nil, nil)
// when no DSN is configured.
func OpenStore(ctx context.Context, cfg config.DatabaseConfig, migrate bool, logger *slog.Logger) (*Store, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if errors.Is(err, postgres.ErrDisabled) {
		logger.Info("database not configured, word lists and run history disabled")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if migrate {
		applied, err := postgres.Migrate(ctx, cfg.DSN)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	return &Store{
		Pool:      pool,
		WordLists: wordlist.New(pool, postgres.NewTxManager(pool)),
		Runs:      decoderun.New(pool),
	}, nil
}

// Close releases the pool. Safe on a nil Store.
func (s *Store) Close() {
	if s != nil {
		s.Pool.Close()
	}
}

// NewDecoderService builds the decoder service, attaching the word-list
// store and run recorder only when store is non-nil.
func NewDecoderService(logger *slog.Logger, cfg config.DecoderConfig, store *Store) *decodersvc.Service {
	if store == nil {
		return decodersvc.NewService(logger, nil, nil, cfg)
	}
	return decodersvc.NewService(logger, store.WordLists, store.Runs, cfg)
}

// NewWordListService builds the word-list management service. store must
// not be nil.
func NewWordListService(logger *slog.Logger, store *Store) *wordlistsvc.Service {
	return wordlistsvc.NewService(logger, store.WordLists, store.Runs)
}
