package lexicon

import (
	"errors"
	"testing"

	"github.com/heartmarshall/morse-resistance/internal/domain"
)

func mustIndex(t *testing.T, words ...string) *Index {
	t.Helper()
	idx, err := New(words)
	if err != nil {
		t.Fatalf("New(%v): %v", words, err)
	}
	return idx
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name       string
		words      []string
		wantFields []string
	}{
		{"empty word", []string{"HELLO", ""}, []string{"words[1]"}},
		{"lowercase", []string{"hello"}, []string{"words[0]"}},
		{"digit", []string{"A1"}, []string{"words[0]"}},
		{"space inside", []string{"HE LLO"}, []string{"words[0]"}},
		{"several", []string{"", "OK", "bad"}, []string{"words[0]", "words[2]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.words)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *domain.ValidationError, got %T", err)
			}
			if len(ve.Errors) != len(tt.wantFields) {
				t.Fatalf("got %d field errors, want %d: %v", len(ve.Errors), len(tt.wantFields), ve.Errors)
			}
			for i, f := range tt.wantFields {
				if ve.Errors[i].Field != f {
					t.Errorf("Errors[%d].Field = %q, want %q", i, ve.Errors[i].Field, f)
				}
			}
		})
	}
}

func TestNew_EmptyDictionary(t *testing.T) {
	idx := mustIndex(t)

	if idx.Len() != 0 {
		t.Errorf("Len() = %d, want 0", idx.Len())
	}
	if idx.HasFirstLetter('A') {
		t.Error("HasFirstLetter('A') should be false")
	}
	if idx.IsPrefixOfSomeWord("A") || idx.IsWord("A") {
		t.Error("empty dictionary should match nothing")
	}
}

func TestNew_Duplicates(t *testing.T) {
	idx := mustIndex(t, "GO", "GO", "GOD")

	if idx.Len() != 2 {
		t.Errorf("Len() = %d, want 2", idx.Len())
	}
	words := idx.Words()
	if len(words) != 2 || words[0] != "GO" || words[1] != "GOD" {
		t.Errorf("Words() = %v", words)
	}
}

func TestHasFirstLetter(t *testing.T) {
	idx := mustIndex(t, "HELLO", "WORLD")

	for _, c := range []byte{'H', 'W'} {
		if !idx.HasFirstLetter(c) {
			t.Errorf("HasFirstLetter(%q) = false", c)
		}
	}
	for _, c := range []byte{'A', 'h', '.', 0} {
		if idx.HasFirstLetter(c) {
			t.Errorf("HasFirstLetter(%q) = true", c)
		}
	}
}

func TestIsPrefixOfSomeWord(t *testing.T) {
	idx := mustIndex(t, "HELL", "HELLO", "HER", "WORLD")

	tests := []struct {
		s    string
		want bool
	}{
		{"H", true},
		{"HE", true},
		{"HELL", true},
		{"HELLO", true},
		{"HELLOS", false},
		{"HERE", false},
		{"WOR", true},
		{"WORLD", true},
		{"O", false},
		{"", false},
		{"h", false},
	}

	for _, tt := range tests {
		if got := idx.IsPrefixOfSomeWord(tt.s); got != tt.want {
			t.Errorf("IsPrefixOfSomeWord(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestIsWord(t *testing.T) {
	idx := mustIndex(t, "HER", "HERE", "E")

	tests := []struct {
		s    string
		want bool
	}{
		{"HER", true},
		{"HERE", true},
		{"E", true},
		{"HE", false},
		{"HERES", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := idx.IsWord(tt.s); got != tt.want {
			t.Errorf("IsWord(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestWords_GroupedByFirstLetter(t *testing.T) {
	idx := mustIndex(t, "WORLD", "HELLO", "HELL", "TEST")

	words := idx.Words()
	want := []string{"HELL", "HELLO", "TEST", "WORLD"}
	if len(words) != len(want) {
		t.Fatalf("Words() = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}
