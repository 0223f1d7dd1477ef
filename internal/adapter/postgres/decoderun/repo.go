// Package decoderun records finished decodes for later inspection.
package decoderun

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/morse-resistance/internal/adapter/postgres"
	"github.com/heartmarshall/morse-resistance/internal/domain"
)

// Repo provides decode-run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new decode-run repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var runColumns = []string{"id", "word_list_id", "morse", "mode", "message_count", "duration_ms", "created_at"}

// Create stores run. A zero ID or CreatedAt is filled in; the stored run is
// returned. Returns domain.ErrNotFound if WordListID names no list.
func (r *Repo) Create(ctx context.Context, run domain.DecodeRun) (*domain.DecodeRun, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	run.CreatedAt = run.CreatedAt.Truncate(time.Microsecond)

	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder.
		Insert("decode_runs").
		Columns(runColumns...).
		Values(run.ID, run.WordListID, run.Morse, string(run.Mode), run.MessageCount,
			run.Duration.Milliseconds(), run.CreatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "decode run", run.ID.String())
	}

	return &run, nil
}

// ListByWordList returns the most recent runs against a list, newest first.
// limit <= 0 returns every run.
func (r *Repo) ListByWordList(ctx context.Context, listID uuid.UUID, limit int) ([]domain.DecodeRun, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	stmt := postgres.Builder.
		Select(runColumns...).
		From("decode_runs").
		Where(squirrel.Eq{"word_list_id": listID}).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		stmt = stmt.Limit(uint64(limit))
	}

	rows, err := postgres.Query(ctx, q, stmt)
	if err != nil {
		return nil, fmt.Errorf("list decode runs: %w", err)
	}
	defer rows.Close()

	runs := []domain.DecodeRun{}
	for rows.Next() {
		var (
			run        domain.DecodeRun
			mode       string
			durationMS int64
		)
		if err := rows.Scan(&run.ID, &run.WordListID, &run.Morse, &mode, &run.MessageCount, &durationMS, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan decode run: %w", err)
		}
		run.Mode = domain.DecodeMode(mode)
		run.Duration = time.Duration(durationMS) * time.Millisecond
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list decode runs: %w", err)
	}

	return runs, nil
}
