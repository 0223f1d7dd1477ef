package generator

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/morse-resistance/internal/config"
	"github.com/heartmarshall/morse-resistance/internal/input"
	"github.com/heartmarshall/morse-resistance/internal/lexicon"
	"github.com/heartmarshall/morse-resistance/internal/morse"
	"github.com/heartmarshall/morse-resistance/internal/search"
)

func smallConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		WordCount:         20,
		WordMin:           3,
		WordMax:           6,
		SentenceWordCount: 3,
		Seed:              42,
	}
}

func TestGenerate_Shape(t *testing.T) {
	t.Parallel()
	cfg := smallConfig()

	s, err := New(cfg).Generate()
	require.NoError(t, err)

	require.Len(t, s.Problem.Words, cfg.WordCount)
	require.Len(t, s.Sentence, cfg.SentenceWordCount)

	for _, w := range s.Problem.Words {
		assert.GreaterOrEqual(t, len(w), cfg.WordMin)
		assert.Less(t, len(w), cfg.WordMax)
		assert.Equal(t, strings.ToUpper(w), w)
	}
	for _, w := range s.Sentence {
		assert.Contains(t, s.Problem.Words, w)
	}

	want, err := morse.Encode(strings.Join(s.Sentence, ""))
	require.NoError(t, err)
	assert.Equal(t, want, s.Problem.Morse)
}

func TestGenerate_DeterministicSeed(t *testing.T) {
	t.Parallel()

	a, err := New(smallConfig()).Generate()
	require.NoError(t, err)
	b, err := New(smallConfig()).Generate()
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerate_SentenceIsDecodable(t *testing.T) {
	t.Parallel()

	s, err := New(smallConfig()).Generate()
	require.NoError(t, err)

	idx, err := lexicon.New(s.Problem.Words)
	require.NoError(t, err)

	msgs, err := search.New("").ListMessages(context.Background(), s.Problem.Morse, idx)
	require.NoError(t, err)
	assert.Contains(t, msgs, strings.Join(s.Sentence, " "))
}

func TestGenerate_InvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.GeneratorConfig
	}{
		{"no words", config.GeneratorConfig{WordCount: 0, WordMin: 1, WordMax: 3}},
		{"zero min", config.GeneratorConfig{WordCount: 5, WordMin: 0, WordMax: 3}},
		{"min equals max", config.GeneratorConfig{WordCount: 5, WordMin: 3, WordMax: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg).Generate()
			assert.Error(t, err)
		})
	}
}

func TestSample_Answer(t *testing.T) {
	t.Parallel()

	s := Sample{Sentence: []string{"HELLO", "WORLD"}}
	assert.Equal(t, "HELLO;WORLD;", s.Answer())
	assert.Equal(t, "", Sample{}.Answer())
}

func TestWriteFiles(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.txt")

	s, err := New(smallConfig()).Generate()
	require.NoError(t, err)
	require.NoError(t, WriteFiles(s, in, out))

	p, err := input.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, s.Problem, p)

	answer, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, s.Answer(), string(answer))
}

func TestWriteFiles_NoAnswer(t *testing.T) {
	t.Parallel()
	in := filepath.Join(t.TempDir(), "in.txt")

	s, err := New(smallConfig()).Generate()
	require.NoError(t, err)
	require.NoError(t, WriteFiles(s, in, ""))

	_, err = os.Stat(in)
	assert.NoError(t, err)
}
