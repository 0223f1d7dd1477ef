package decoderun_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/morse-resistance/internal/adapter/postgres/decoderun"
	"github.com/heartmarshall/morse-resistance/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/morse-resistance/internal/domain"
)

func newRepo(t *testing.T) (*decoderun.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return decoderun.New(pool), pool
}

func TestRepo_Create_AndListByWordList(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()
	list := testhelper.SeedWordList(t, pool, "GOD", "IS", "NOW", "HERE")

	base := time.Now().UTC().Add(-time.Hour)
	for i, mode := range []domain.DecodeMode{domain.DecodeModeCount, domain.DecodeModeList, domain.DecodeModeCount} {
		_, err := repo.Create(ctx, domain.DecodeRun{
			WordListID:   &list.ID,
			Morse:        "--.---",
			Mode:         mode,
			MessageCount: i,
			Duration:     time.Duration(i+1) * time.Millisecond,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Create #%d: unexpected error: %v", i, err)
		}
	}

	runs, err := repo.ListByWordList(ctx, list.ID, 0)
	if err != nil {
		t.Fatalf("ListByWordList: unexpected error: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("ListByWordList: got %d runs, want 3", len(runs))
	}

	// Newest first.
	if runs[0].MessageCount != 2 || runs[2].MessageCount != 0 {
		t.Errorf("order: got counts %d,%d,%d", runs[0].MessageCount, runs[1].MessageCount, runs[2].MessageCount)
	}
	if runs[1].Mode != domain.DecodeModeList {
		t.Errorf("Mode: got %q, want %q", runs[1].Mode, domain.DecodeModeList)
	}
	if runs[0].Duration != 3*time.Millisecond {
		t.Errorf("Duration: got %v, want 3ms", runs[0].Duration)
	}
	if runs[0].WordListID == nil || *runs[0].WordListID != list.ID {
		t.Errorf("WordListID: got %v, want %s", runs[0].WordListID, list.ID)
	}

	limited, err := repo.ListByWordList(ctx, list.ID, 2)
	if err != nil {
		t.Fatalf("ListByWordList(limit): unexpected error: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("ListByWordList(limit): got %d runs, want 2", len(limited))
	}
}

func TestRepo_Create_FillsDefaults(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	run, err := repo.Create(context.Background(), domain.DecodeRun{
		Morse: "",
		Mode:  domain.DecodeModeList,
	})
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if run.ID == uuid.Nil {
		t.Error("expected generated ID")
	}
	if run.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if run.WordListID != nil {
		t.Errorf("WordListID: got %v, want nil", run.WordListID)
	}
}

func TestRepo_Create_UnknownWordList(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)
	missing := uuid.New()

	_, err := repo.Create(context.Background(), domain.DecodeRun{
		WordListID: &missing,
		Mode:       domain.DecodeModeCount,
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepo_ListByWordList_Empty(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	runs, err := repo.ListByWordList(context.Background(), uuid.New(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runs == nil || len(runs) != 0 {
		t.Errorf("got %v, want empty non-nil slice", runs)
	}
}
