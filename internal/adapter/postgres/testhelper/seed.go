package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/morse-resistance/internal/domain"
)

// UniqueName returns prefix followed by a short unique suffix, for
// non-conflicting word list names across parallel tests.
func UniqueName(prefix string) string {
	return prefix + "-" + uuid.New().String()[:8]
}

// SeedWordList inserts a word list with the given words directly, bypassing
// the repository. Returns the filled domain.WordList.
func SeedWordList(t *testing.T, pool *pgxpool.Pool, words ...string) domain.WordList {
	t.Helper()
	ctx := context.Background()

	list := domain.WordList{
		ID:        uuid.New(),
		Name:      UniqueName("seed"),
		WordCount: len(words),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO word_lists (id, name, word_count, created_at) VALUES ($1, $2, $3, $4)`,
		list.ID, list.Name, list.WordCount, list.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWordList insert list: %v", err)
	}

	for _, w := range words {
		_, err := pool.Exec(ctx,
			`INSERT INTO word_list_words (word_list_id, word) VALUES ($1, $2)`,
			list.ID, w,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedWordList insert word %q: %v", w, err)
		}
	}

	return list
}
