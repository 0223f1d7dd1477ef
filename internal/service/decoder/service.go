package decoder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/morse-resistance/internal/config"
	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/search"
)

// ErrWordListsDisabled is returned when a decode names a word list but no
// word-list store is configured.
var ErrWordListsDisabled = errors.New("word lists are not configured")

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordListRepo interface {
	GetByName(ctx context.Context, name string) (*domain.WordList, error)
	Words(ctx context.Context, listID uuid.UUID) ([]string, error)
}

type runRecorder interface {
	Create(ctx context.Context, run domain.DecodeRun) (*domain.DecodeRun, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service decodes Morse problems against inline or stored dictionaries.
type Service struct {
	log    *slog.Logger
	engine *search.Engine
	lists  wordListRepo
	runs   runRecorder
	cfg    config.DecoderConfig
}

// NewService creates a new decoder service. lists and runs may be nil when
// no database is configured.
func NewService(
	logger *slog.Logger,
	lists wordListRepo,
	runs runRecorder,
	cfg config.DecoderConfig,
) *Service {
	return &Service{
		log:    logger.With("service", "decoder"),
		engine: search.New(cfg.Separator),
		lists:  lists,
		runs:   runs,
		cfg:    cfg,
	}
}

// Separator returns the word separator used in decoded messages.
func (s *Service) Separator() string { return s.engine.Separator() }
