// Package morse holds the international Morse alphabet for the letters A–Z.
// Pure lookups: no state, safe for concurrent use.
package morse

import (
	"fmt"
	"strings"
)

// MaxSymbolLength is the length of the longest letter code. It bounds the
// lookahead window of the segmentation search.
const MaxSymbolLength = 4

const (
	Dot  = '.'
	Dash = '-'
)

var codeToLetter = map[string]byte{
	".-": 'A', "-...": 'B', "-.-.": 'C', "-..": 'D',
	".": 'E', "..-.": 'F', "--.": 'G', "....": 'H',
	"..": 'I', ".---": 'J', "-.-": 'K', ".-..": 'L',
	"--": 'M', "-.": 'N', "---": 'O', ".--.": 'P',
	"--.-": 'Q', ".-.": 'R', "...": 'S', "-": 'T',
	"..-": 'U', "...-": 'V', ".--": 'W', "-..-": 'X',
	"-.--": 'Y', "--..": 'Z',
}

// letterToCode is indexed by letter - 'A'.
var letterToCode [26]string

func init() {
	for code, letter := range codeToLetter {
		letterToCode[letter-'A'] = code
	}
}

// Decode returns the letter for a symbol string. ok is false for anything
// that is not exactly one letter code, including the empty string.
func Decode(symbols string) (letter byte, ok bool) {
	if len(symbols) == 0 || len(symbols) > MaxSymbolLength {
		return 0, false
	}
	letter, ok = codeToLetter[symbols]
	return letter, ok
}

// EncodeLetter returns the symbol string for an uppercase letter.
func EncodeLetter(letter byte) (string, bool) {
	if letter < 'A' || letter > 'Z' {
		return "", false
	}
	return letterToCode[letter-'A'], true
}

// Encode converts uppercase text to Morse without separators. Spaces are
// skipped so a decoded message can be fed back directly.
func Encode(text string) (string, error) {
	var b strings.Builder
	b.Grow(len(text) * 3)
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' {
			continue
		}
		code, ok := EncodeLetter(c)
		if !ok {
			return "", fmt.Errorf("morse: cannot encode %q at offset %d", c, i)
		}
		b.WriteString(code)
	}
	return b.String(), nil
}

// IsSymbols reports whether s consists only of dots and dashes.
// The empty string is a valid (empty) sequence.
func IsSymbols(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != Dot && s[i] != Dash {
			return false
		}
	}
	return true
}
