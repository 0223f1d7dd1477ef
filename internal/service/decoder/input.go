package decoder

import (
	"fmt"

	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/morse"
)

// DecodeInput holds the parameters of one decode. Exactly one dictionary
// source is used: WordList when set, Words otherwise.
type DecodeInput struct {
	Morse    string
	Words    []string
	WordList string
	Mode     domain.DecodeMode
}

// Validate checks all fields against the configured limits and collects all errors.
func (i *DecodeInput) Validate(cfg validateLimits) error {
	var errs []domain.FieldError

	if !i.Mode.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mode", Message: fmt.Sprintf("must be %q or %q", domain.DecodeModeCount, domain.DecodeModeList)})
	}
	if !morse.IsSymbols(i.Morse) {
		errs = append(errs, domain.FieldError{Field: "morse", Message: "may contain only '.' and '-'"})
	}
	if cfg.maxMorseLength > 0 && len(i.Morse) > cfg.maxMorseLength {
		errs = append(errs, domain.FieldError{Field: "morse", Message: fmt.Sprintf("too long (max %d)", cfg.maxMorseLength)})
	}
	if i.WordList != "" && len(i.Words) > 0 {
		errs = append(errs, domain.FieldError{Field: "word_list", Message: "cannot be combined with words"})
	}
	if cfg.maxWords > 0 && len(i.Words) > cfg.maxWords {
		errs = append(errs, domain.FieldError{Field: "words", Message: fmt.Sprintf("too many (max %d)", cfg.maxWords)})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

type validateLimits struct {
	maxMorseLength int
	maxWords       int
}
