package decoder

import "github.com/heartmarshall/morse-resistance/internal/search"

// Result is the outcome of a decode. Messages is nil in count mode and
// sorted in list mode.
type Result struct {
	Count    int
	Messages []string
	Stats    search.Stats
}
