// Package lexicon indexes a dictionary by first letter for the prefix and
// membership queries the segmentation search asks on every step.
// An Index is immutable after New and safe for concurrent readers.
package lexicon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/heartmarshall/morse-resistance/internal/domain"
)

// Index groups dictionary words by their first letter.
type Index struct {
	// byFirst[c-'A'] holds the words starting with c, sorted.
	byFirst [26][]string
	members map[string]struct{}
}

// New validates words and builds an Index. Duplicates are collapsed. Every
// word must be non-empty and consist of the letters A–Z only; otherwise a
// *domain.ValidationError naming each offending position is returned.
func New(words []string) (*Index, error) {
	idx := &Index{members: make(map[string]struct{}, len(words))}

	var errs []domain.FieldError
	for i, w := range words {
		if msg := checkWord(w); msg != "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("words[%d]", i), Message: msg})
			continue
		}
		if _, dup := idx.members[w]; dup {
			continue
		}
		idx.members[w] = struct{}{}
		idx.byFirst[w[0]-'A'] = append(idx.byFirst[w[0]-'A'], w)
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	for i := range idx.byFirst {
		sort.Strings(idx.byFirst[i])
	}
	return idx, nil
}

func checkWord(w string) string {
	if w == "" {
		return "must not be empty"
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'A' || w[i] > 'Z' {
			return fmt.Sprintf("invalid character %q, only A-Z allowed", w[i])
		}
	}
	return ""
}

// Len returns the number of distinct words.
func (x *Index) Len() int { return len(x.members) }

// HasFirstLetter reports whether at least one word starts with c.
func (x *Index) HasFirstLetter(c byte) bool {
	if c < 'A' || c > 'Z' {
		return false
	}
	return len(x.byFirst[c-'A']) > 0
}

// IsPrefixOfSomeWord reports whether s equals or prefixes a dictionary word.
// The scan is linear in the number of words sharing s's first letter;
// callers repeating the same query should cache the answer.
func (x *Index) IsPrefixOfSomeWord(s string) bool {
	if s == "" || !x.HasFirstLetter(s[0]) {
		return false
	}
	for _, w := range x.byFirst[s[0]-'A'] {
		if strings.HasPrefix(w, s) {
			return true
		}
	}
	return false
}

// IsWord reports whether s is exactly a dictionary word.
func (x *Index) IsWord(s string) bool {
	if s == "" || !x.HasFirstLetter(s[0]) {
		return false
	}
	_, ok := x.members[s]
	return ok
}

// Words returns the distinct words grouped by first letter, A first.
func (x *Index) Words() []string {
	out := make([]string, 0, len(x.members))
	for _, group := range x.byFirst {
		out = append(out, group...)
	}
	return out
}
