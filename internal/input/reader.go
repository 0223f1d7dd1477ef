// Package input reads decode problems in the line-oriented puzzle format:
//
//	line 1      the Morse sequence (dots and dashes only)
//	line 2      N, the number of dictionary words
//	lines 3..   one word per line, N lines
//
// The reader validates shape only (line count, non-empty words). Word
// alphabet checks happen when the dictionary index is built.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/heartmarshall/morse-resistance/internal/domain"
	"github.com/heartmarshall/morse-resistance/internal/morse"
)

// maxLineBytes bounds a single line; the Morse line is the long one.
const maxLineBytes = 4 << 20

// ReadFile opens path and reads one problem from it.
func ReadFile(path string) (domain.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Problem{}, fmt.Errorf("open input file: %w", err)
	}
	defer f.Close()

	p, err := Read(f)
	if err != nil {
		return domain.Problem{}, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}

// Read parses one problem from r. Trailing lines after the N words are ignored.
func Read(r io.Reader) (domain.Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimSpace(sc.Text()), true
	}

	seq, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return domain.Problem{}, fmt.Errorf("read morse line: %w", err)
		}
		return domain.Problem{}, domain.NewValidationError("line 1", "missing morse sequence")
	}
	if !morse.IsSymbols(seq) {
		return domain.Problem{}, domain.NewValidationError("line 1", "morse sequence may contain only '.' and '-'")
	}

	rawCount, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return domain.Problem{}, fmt.Errorf("read word count: %w", err)
		}
		return domain.Problem{}, domain.NewValidationError("line 2", "missing word count")
	}
	n, err := strconv.Atoi(rawCount)
	if err != nil || n < 0 {
		return domain.Problem{}, domain.NewValidationError("line 2", fmt.Sprintf("invalid word count %q", rawCount))
	}

	words := make([]string, 0, n)
	for len(words) < n {
		w, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return domain.Problem{}, fmt.Errorf("read word %d: %w", len(words)+1, err)
			}
			return domain.Problem{}, domain.NewValidationError(
				fmt.Sprintf("line %d", line+1),
				fmt.Sprintf("expected %d words, got %d", n, len(words)),
			)
		}
		if w == "" {
			return domain.Problem{}, domain.NewValidationError(fmt.Sprintf("line %d", line), "word must not be empty")
		}
		words = append(words, w)
	}

	return domain.Problem{Morse: seq, Words: words}, nil
}

// Write renders p in the same format Read accepts.
func Write(w io.Writer, p domain.Problem) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, p.Morse)
	fmt.Fprintln(bw, len(p.Words))
	for _, word := range p.Words {
		fmt.Fprintln(bw, word)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write problem: %w", err)
	}
	return nil
}

// ReadWords reads a plain word file: one word per line. Blank lines and lines
// starting with '#' are skipped. Words are returned as written, trimmed.
func ReadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words []string
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		words = append(words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return words, nil
}
