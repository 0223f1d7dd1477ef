package testhelper

import (
	"context"
	"testing"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	list := SeedWordList(t, pool, "HELLO", "WORLD")

	var count int
	err := pool.QueryRow(
		context.Background(),
		`SELECT count(*) FROM word_list_words WHERE word_list_id = $1`,
		list.ID,
	).Scan(&count)
	if err != nil {
		t.Fatalf("expected words in DB, got error: %v", err)
	}

	if count != 2 {
		t.Fatalf("expected 2 words, got %d", count)
	}
}
