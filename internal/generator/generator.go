// Package generator synthesizes decode problems for manual and load testing:
// a random dictionary, a sentence drawn from it, and the sentence's Morse.
package generator

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/morse-resistance/internal/config"
	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/input"
	"github.com/heartmarshall/morse-resistance/internal/morse"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Sample is one generated problem together with the sentence that produced
// its Morse sequence.
type Sample struct {
	Problem  domain.Problem
	Sentence []string
}

// Generator draws samples from a seeded source. Not safe for concurrent use.
type Generator struct {
	cfg config.GeneratorConfig
	rng *rand.Rand
}

// New creates a Generator. A zero cfg.Seed seeds from the clock.
func New(cfg config.GeneratorConfig) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate builds WordCount random words with lengths in [WordMin, WordMax),
// picks SentenceWordCount of them as the hidden sentence and encodes it.
func (g *Generator) Generate() (Sample, error) {
	if g.cfg.WordCount <= 0 {
		return Sample{}, domain.NewValidationError("word_count", "must be > 0")
	}
	if g.cfg.WordMin < 1 || g.cfg.WordMax <= g.cfg.WordMin {
		return Sample{}, domain.NewValidationError("word_min", "must satisfy 1 <= word_min < word_max")
	}

	words := make([]string, g.cfg.WordCount)
	for i := range words {
		words[i] = g.word(g.cfg.WordMin + g.rng.IntN(g.cfg.WordMax-g.cfg.WordMin))
	}

	sentence := make([]string, g.cfg.SentenceWordCount)
	for i := range sentence {
		sentence[i] = words[g.rng.IntN(len(words))]
	}

	seq, err := morse.Encode(strings.Join(sentence, ""))
	if err != nil {
		return Sample{}, fmt.Errorf("encode sentence: %w", err)
	}

	return Sample{
		Problem:  domain.Problem{Morse: seq, Words: words},
		Sentence: sentence,
	}, nil
}

func (g *Generator) word(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return string(b)
}

// Answer renders the hidden sentence as "WORD;WORD;...;".
func (s Sample) Answer() string {
	var b strings.Builder
	for _, w := range s.Sentence {
		b.WriteString(w)
		b.WriteByte(';')
	}
	return b.String()
}

// WriteFiles writes the problem to inputPath in the puzzle format and the
// answer to answerPath. An empty answerPath skips the answer file.
func WriteFiles(s Sample, inputPath, answerPath string) error {
	f, err := os.Create(inputPath)
	if err != nil {
		return fmt.Errorf("create input file: %w", err)
	}
	if err := input.Write(f, s.Problem); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close input file: %w", err)
	}

	if answerPath == "" {
		return nil
	}
	if err := os.WriteFile(answerPath, []byte(s.Answer()), 0o644); err != nil {
		return fmt.Errorf("write answer file: %w", err)
	}
	return nil
}
