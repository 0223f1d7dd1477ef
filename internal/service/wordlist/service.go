// Package wordlist manages the named dictionaries decodes can refer to.
package wordlist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/lexicon"
)

const (
	maxNameLength   = 100
	defaultRunLimit = 20
	maxRunLimit     = 200
)

type listRepo interface {
	Create(ctx context.Context, name string, words []string) (*domain.WordList, error)
	GetByName(ctx context.Context, name string) (*domain.WordList, error)
	List(ctx context.Context) ([]domain.WordList, error)
	Delete(ctx context.Context, listID uuid.UUID) error
}

type runRepo interface {
	ListByWordList(ctx context.Context, listID uuid.UUID, limit int) ([]domain.DecodeRun, error)
}

// Service implements word-list management.
type Service struct {
	log   *slog.Logger
	lists listRepo
	runs  runRepo
}

// NewService creates a new word-list service.
func NewService(logger *slog.Logger, lists listRepo, runs runRepo) *Service {
	return &Service{
		log:   logger.With("service", "wordlist"),
		lists: lists,
		runs:  runs,
	}
}

// Create normalizes and validates name and words, then stores the list.
// Words are upper-cased and trimmed; blank entries are skipped.
func (s *Service) Create(ctx context.Context, name string, words []string) (*domain.WordList, error) {
	name = domain.NormalizeWordListName(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if len(name) > maxNameLength {
		return nil, domain.NewValidationError("name", fmt.Sprintf("too long (max %d)", maxNameLength))
	}

	normalized := make([]string, 0, len(words))
	for _, w := range words {
		if w = domain.NormalizeWord(w); w != "" {
			normalized = append(normalized, w)
		}
	}

	idx, err := lexicon.New(normalized)
	if err != nil {
		return nil, err
	}

	list, err := s.lists.Create(ctx, name, idx.Words())
	if err != nil {
		return nil, fmt.Errorf("create word list: %w", err)
	}

	s.log.InfoContext(ctx, "word list created",
		slog.String("name", list.Name),
		slog.String("id", list.ID.String()),
		slog.Int("words", list.WordCount),
	)

	return list, nil
}

// List returns all stored lists ordered by name.
func (s *Service) List(ctx context.Context) ([]domain.WordList, error) {
	return s.lists.List(ctx)
}

// Delete removes the list called name.
func (s *Service) Delete(ctx context.Context, name string) error {
	list, err := s.lists.GetByName(ctx, domain.NormalizeWordListName(name))
	if err != nil {
		return fmt.Errorf("get word list: %w", err)
	}
	if err := s.lists.Delete(ctx, list.ID); err != nil {
		return fmt.Errorf("delete word list: %w", err)
	}

	s.log.InfoContext(ctx, "word list deleted", slog.String("name", list.Name))
	return nil
}

// Runs returns the most recent decodes against the list called name,
// newest first. limit is clamped to [1, 200]; 0 means 20.
func (s *Service) Runs(ctx context.Context, name string, limit int) ([]domain.DecodeRun, error) {
	list, err := s.lists.GetByName(ctx, domain.NormalizeWordListName(name))
	if err != nil {
		return nil, fmt.Errorf("get word list: %w", err)
	}

	runs, err := s.runs.ListByWordList(ctx, list.ID, clampLimit(limit, 1, maxRunLimit, defaultRunLimit))
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// clampLimit ensures a limit is within [min, max], defaulting from 0 to defaultVal.
func clampLimit(limit, min, max, defaultVal int) int {
	if limit <= 0 {
		return defaultVal
	}
	if limit < min {
		return min
	}
	if limit > max {
		return max
	}
	return limit
}
