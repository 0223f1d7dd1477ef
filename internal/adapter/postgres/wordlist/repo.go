// Package wordlist implements the named word-list store using PostgreSQL.
// A word list is a reusable dictionary the decoder can be pointed at by name.
package wordlist

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/morse-resistance/internal/adapter/postgres"
	"github.com/heartmarshall/morse-resistance/internal/domain"
)

// insertChunkSize bounds the rows of one multi-row INSERT (PostgreSQL caps
// bind parameters at 65535).
const insertChunkSize = 1000

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Repo provides word-list persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  txManager
}

// New creates a new word-list repository.
func New(pool *pgxpool.Pool, txm txManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

var listColumns = []string{"id", "name", "word_count", "created_at"}

// Create stores a new list with its words in one transaction. Duplicate
// words are stored once; WordCount reflects distinct words.
// Returns domain.ErrAlreadyExists if the name is taken and
// domain.ErrValidation if a word is not A–Z only.
func (r *Repo) Create(ctx context.Context, name string, words []string) (*domain.WordList, error) {
	list := domain.WordList{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	err := r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		_, err := postgres.Exec(ctx, q, postgres.Builder.
			Insert("word_lists").
			Columns(listColumns...).
			Values(list.ID, list.Name, 0, list.CreatedAt))
		if err != nil {
			return postgres.MapError(err, "word list", name)
		}

		for start := 0; start < len(words); start += insertChunkSize {
			end := min(start+insertChunkSize, len(words))

			stmt := postgres.Builder.
				Insert("word_list_words").
				Columns("word_list_id", "word").
				Suffix("ON CONFLICT DO NOTHING")
			for _, w := range words[start:end] {
				stmt = stmt.Values(list.ID, w)
			}

			if _, err := postgres.Exec(ctx, q, stmt); err != nil {
				return postgres.MapError(err, "word list", name)
			}
		}

		row := postgres.QueryRow(ctx, q, postgres.Builder.
			Update("word_lists").
			Set("word_count", squirrel.Expr("(SELECT count(*) FROM word_list_words WHERE word_list_id = ?)", list.ID)).
			Where(squirrel.Eq{"id": list.ID}).
			Suffix("RETURNING word_count"))
		if err := row.Scan(&list.WordCount); err != nil {
			return postgres.MapError(err, "word list", name)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &list, nil
}

// GetByName returns a list by its unique name.
// Returns domain.ErrNotFound if no list has that name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.WordList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := postgres.QueryRow(ctx, q, postgres.Builder.
		Select(listColumns...).
		From("word_lists").
		Where(squirrel.Eq{"name": name}))

	list, err := scanList(row)
	if err != nil {
		return nil, postgres.MapError(err, "word list", name)
	}
	return &list, nil
}

// Words returns the words of a list in alphabetical order.
// Returns an empty slice (not nil) for an empty or unknown list.
func (r *Repo) Words(ctx context.Context, listID uuid.UUID) ([]string, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder.
		Select("word").
		From("word_list_words").
		Where(squirrel.Eq{"word_list_id": listID}).
		OrderBy("word"))
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}

	words, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}
	if words == nil {
		words = []string{}
	}
	return words, nil
}

// List returns all word lists ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.WordList, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder.
		Select(listColumns...).
		From("word_lists").
		OrderBy("name"))
	if err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}
	defer rows.Close()

	lists := []domain.WordList{}
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan word list: %w", err)
		}
		lists = append(lists, list)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}

	return lists, nil
}

// Delete removes a list and its words. Recorded runs keep a NULL list id.
// Returns domain.ErrNotFound if the list does not exist.
func (r *Repo) Delete(ctx context.Context, listID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder.
		Delete("word_lists").
		Where(squirrel.Eq{"id": listID}))
	if err != nil {
		return postgres.MapError(err, "word list", listID.String())
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "word list", listID.String())
	}
	return nil
}

func scanList(row pgx.Row) (domain.WordList, error) {
	var list domain.WordList
	err := row.Scan(&list.ID, &list.Name, &list.WordCount, &list.CreatedAt)
	return list, err
}
