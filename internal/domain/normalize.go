package domain

import "strings"

// NormalizeWord prepares a dictionary word for indexing:
//   - trims leading/trailing whitespace
//   - converts to uppercase
//
// Characters outside A–Z are preserved so the index can reject them.
func NormalizeWord(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// NormalizeWordListName trims and lowercases a word list name and compresses
// inner runs of whitespace into a single space.
func NormalizeWordListName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}
