// Package search implements the segmentation search that turns a Morse
// sequence without separators into every sentence of dictionary words it can
// spell.
//
// Two ambiguities are explored together: how many symbols form the next
// letter (1 to morse.MaxSymbolLength) and whether the letters pending since
// the last word boundary close a word now or keep growing. Every state is
// explored at most once per run; states are identified by the words already
// confirmed, the position in the sequence and the pending letters.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/heartmarshall/morse-resistance/internal/morse"
)

// ErrAborted is returned when the context is cancelled or its deadline
// passes before the search finishes. It is never folded into an empty result.
var ErrAborted = errors.New("search aborted")

// DefaultSeparator joins the words of a decoded message.
const DefaultSeparator = " "

// ctxCheckInterval is how many states are popped between context checks.
const ctxCheckInterval = 1024

// Dictionary is the read-only oracle the search consults.
// *lexicon.Index implements it.
type Dictionary interface {
	IsPrefixOfSomeWord(s string) bool
	IsWord(s string) bool
}

// Fragment pairs the letters decoded since the last word boundary with the
// exact Morse symbols that produced them.
type Fragment struct {
	Morse       string
	Translation string
}

// compositions are the ordered ways to split a full lookahead window into
// consecutive letter lengths.
var compositions = [][]int{
	{1, 1, 1, 1},
	{1, 1, 2},
	{1, 2, 1},
	{1, 3},
	{2, 1, 1},
	{2, 2},
	{3, 1},
	{4},
}

// Stats describes one finished run.
type Stats struct {
	VisitedStates int
	PhraseCache   int
	Messages      int
	Elapsed       time.Duration
}

// Result is the outcome of one run. Messages are distinct and in discovery
// order.
type Result struct {
	Messages []string
	Stats    Stats
}

// Engine runs searches. It holds no per-run state, so one Engine may serve
// concurrent calls.
type Engine struct {
	separator string
}

// New creates an Engine joining words with separator, or DefaultSeparator
// when separator is empty.
func New(separator string) *Engine {
	if separator == "" {
		separator = DefaultSeparator
	}
	return &Engine{separator: separator}
}

// Separator returns the word separator used in messages.
func (e *Engine) Separator() string { return e.separator }

// CountMessages returns the number of distinct sentences spelled by seq.
func (e *Engine) CountMessages(ctx context.Context, seq string, dict Dictionary) (int, error) {
	res, err := e.Run(ctx, seq, dict)
	if err != nil {
		return 0, err
	}
	return len(res.Messages), nil
}

// ListMessages returns the distinct sentences spelled by seq.
func (e *Engine) ListMessages(ctx context.Context, seq string, dict Dictionary) ([]string, error) {
	res, err := e.Run(ctx, seq, dict)
	if err != nil {
		return nil, err
	}
	return res.Messages, nil
}

// Run performs one full search over seq. An empty seq yields exactly one
// message, the empty sentence.
func (e *Engine) Run(ctx context.Context, seq string, dict Dictionary) (*Result, error) {
	start := time.Now()
	sc := newSearchContext(seq, dict, e.separator)

	if err := sc.run(ctx); err != nil {
		return nil, err
	}

	return &Result{
		Messages: sc.messages,
		Stats: Stats{
			VisitedStates: len(sc.visited),
			PhraseCache:   len(sc.phrases),
			Messages:      len(sc.messages),
			Elapsed:       time.Since(start),
		},
	}, nil
}

// ExpandWindow lists every way to extend pending by one to four letters read
// from window, keeping only extensions whose letters remain a feasible prefix.
// It is the single-step view of the search and uses no cache.
func ExpandWindow(window string, pending Fragment, dict Dictionary) []Fragment {
	sc := newSearchContext("", dict, DefaultSeparator)
	sc.phrases = nil
	return sc.expandWindow(window, pending)
}

// state is one node of the search tree.
type state struct {
	pos       int
	pending   Fragment
	preceding string
}

type fingerprint struct {
	preceding string
	pos       int
	pending   string
}

// searchContext is everything one run owns. It is created per run and
// dropped afterwards.
type searchContext struct {
	seq       string
	dict      Dictionary
	separator string

	visited  map[fingerprint]struct{}
	phrases  map[string]bool
	seen     map[string]struct{}
	messages []string
}

func newSearchContext(seq string, dict Dictionary, separator string) *searchContext {
	return &searchContext{
		seq:       seq,
		dict:      dict,
		separator: separator,
		visited:   make(map[fingerprint]struct{}),
		phrases:   make(map[string]bool),
		seen:      make(map[string]struct{}),
	}
}

func (sc *searchContext) run(ctx context.Context) error {
	stack := []state{{}}

	for n := 0; len(stack) > 0; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("%w: %w", ErrAborted, err)
			}
		}

		st := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		stack = sc.visit(st, stack)
	}

	return nil
}

// visit explores one state and pushes its children onto stack.
func (sc *searchContext) visit(st state, stack []state) []state {
	if st.pos > len(sc.seq) {
		return stack
	}

	key := fingerprint{preceding: st.preceding, pos: st.pos, pending: st.pending.Translation}
	if _, ok := sc.visited[key]; ok {
		return stack
	}
	sc.visited[key] = struct{}{}

	if st.pos == len(sc.seq) && st.pending.Translation == "" {
		sc.addMessage(strings.TrimSuffix(st.preceding, sc.separator))
		return stack
	}

	end := min(st.pos+morse.MaxSymbolLength, len(sc.seq))
	exts := sc.expandWindow(sc.seq[st.pos:end], st.pending)

	// Pushed in reverse so extensions pop in discovery order, each one
	// continuing its word before closing it.
	for i := len(exts) - 1; i >= 0; i-- {
		ext := exts[i]
		next := st.pos + len(ext.Morse) - len(st.pending.Morse)

		if sc.dict.IsWord(ext.Translation) {
			stack = append(stack, state{
				pos:       next,
				preceding: st.preceding + ext.Translation + sc.separator,
			})
		}
		stack = append(stack, state{pos: next, pending: ext, preceding: st.preceding})
	}

	return stack
}

func (sc *searchContext) addMessage(msg string) {
	if _, ok := sc.seen[msg]; ok {
		return
	}
	sc.seen[msg] = struct{}{}
	sc.messages = append(sc.messages, msg)
}

func (sc *searchContext) expandWindow(window string, pending Fragment) []Fragment {
	if window == "" {
		return nil
	}

	var out []Fragment
	added := make(map[Fragment]struct{})

	for _, parts := range compositions {
		offset := 0
		translated := make([]byte, 0, len(parts))

		for _, size := range parts {
			if offset+size > len(window) {
				break
			}
			letter, ok := morse.Decode(window[offset : offset+size])
			if !ok {
				break
			}
			offset += size
			translated = append(translated, letter)

			ext := Fragment{
				Morse:       pending.Morse + window[:offset],
				Translation: pending.Translation + string(translated),
			}
			if !sc.feasible(ext.Translation) {
				break
			}
			if _, dup := added[ext]; !dup {
				added[ext] = struct{}{}
				out = append(out, ext)
			}
		}
	}

	return out
}

// feasible reports whether s prefixes some dictionary word, memoized per run.
func (sc *searchContext) feasible(s string) bool {
	if sc.phrases == nil {
		return sc.dict.IsPrefixOfSomeWord(s)
	}
	if ok, cached := sc.phrases[s]; cached {
		return ok
	}
	ok := sc.dict.IsPrefixOfSomeWord(s)
	sc.phrases[s] = ok
	return ok
}
