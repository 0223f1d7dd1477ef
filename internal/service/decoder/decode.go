package decoder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/lexicon"
	"github.com/heartmarshall/morse-resistance/internal/search"
)

// Count returns the number of distinct sentences p.Words can spell from p.Morse.
func (s *Service) Count(ctx context.Context, p domain.Problem) (int, error) {
	res, err := s.Decode(ctx, DecodeInput{Morse: p.Morse, Words: p.Words, Mode: domain.DecodeModeCount})
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// List returns the sorted distinct sentences p.Words can spell from p.Morse.
func (s *Service) List(ctx context.Context, p domain.Problem) ([]string, error) {
	res, err := s.Decode(ctx, DecodeInput{Morse: p.Morse, Words: p.Words, Mode: domain.DecodeModeList})
	if err != nil {
		return nil, err
	}
	return res.Messages, nil
}

// CountWithList is Count with the dictionary loaded from a stored word list.
func (s *Service) CountWithList(ctx context.Context, seq, listName string) (int, error) {
	res, err := s.Decode(ctx, DecodeInput{Morse: seq, WordList: listName, Mode: domain.DecodeModeCount})
	if err != nil {
		return 0, err
	}
	return res.Count, nil
}

// ListWithList is List with the dictionary loaded from a stored word list.
func (s *Service) ListWithList(ctx context.Context, seq, listName string) ([]string, error) {
	res, err := s.Decode(ctx, DecodeInput{Morse: seq, WordList: listName, Mode: domain.DecodeModeList})
	if err != nil {
		return nil, err
	}
	return res.Messages, nil
}

// Decode validates in, resolves its dictionary and runs the search under the
// configured timeout. A search cut short returns an error wrapping
// search.ErrAborted, never a partial result.
func (s *Service) Decode(ctx context.Context, in DecodeInput) (*Result, error) {
	if err := in.Validate(validateLimits{
		maxMorseLength: s.cfg.MaxMorseLength,
		maxWords:       s.cfg.MaxWords,
	}); err != nil {
		return nil, err
	}

	words, listID, err := s.resolveWords(ctx, in)
	if err != nil {
		return nil, err
	}

	idx, err := lexicon.New(words)
	if err != nil {
		return nil, err
	}

	runCtx := ctx
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	res, err := s.engine.Run(runCtx, in.Morse, idx)
	if err != nil {
		if errors.Is(err, search.ErrAborted) {
			s.log.WarnContext(ctx, "decode aborted",
				slog.String("mode", in.Mode.String()),
				slog.Int("morse_length", len(in.Morse)),
				slog.Int("words", idx.Len()),
				slog.String("error", err.Error()),
			)
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	s.log.InfoContext(ctx, "decode finished",
		slog.String("mode", in.Mode.String()),
		slog.Int("morse_length", len(in.Morse)),
		slog.Int("words", idx.Len()),
		slog.Int("messages", res.Stats.Messages),
		slog.Int("visited_states", res.Stats.VisitedStates),
		slog.Int("phrase_cache", res.Stats.PhraseCache),
		slog.Duration("elapsed", res.Stats.Elapsed),
	)

	out := &Result{Count: len(res.Messages), Stats: res.Stats}
	if in.Mode == domain.DecodeModeList {
		out.Messages = res.Messages
		sort.Strings(out.Messages)
	}

	s.record(ctx, in, listID, out)

	return out, nil
}

// resolveWords returns the normalized dictionary for in and, for a stored
// list, its id.
func (s *Service) resolveWords(ctx context.Context, in DecodeInput) ([]string, *uuid.UUID, error) {
	if in.WordList == "" {
		words := make([]string, len(in.Words))
		for i, w := range in.Words {
			words[i] = domain.NormalizeWord(w)
		}
		return words, nil, nil
	}

	if s.lists == nil {
		return nil, nil, ErrWordListsDisabled
	}

	list, err := s.lists.GetByName(ctx, domain.NormalizeWordListName(in.WordList))
	if err != nil {
		return nil, nil, fmt.Errorf("get word list: %w", err)
	}

	words, err := s.lists.Words(ctx, list.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("load words of %s: %w", list.Name, err)
	}

	return words, &list.ID, nil
}

// record persists the run when recording is enabled. Failures are logged
// and do not fail the decode.
func (s *Service) record(ctx context.Context, in DecodeInput, listID *uuid.UUID, res *Result) {
	if !s.cfg.RecordRuns || s.runs == nil {
		return
	}

	_, err := s.runs.Create(ctx, domain.DecodeRun{
		WordListID:   listID,
		Morse:        in.Morse,
		Mode:         in.Mode,
		MessageCount: res.Count,
		Duration:     res.Stats.Elapsed,
	})
	if err != nil {
		s.log.ErrorContext(ctx, "record decode run", slog.String("error", err.Error()))
	}
}
