package scripture

import "strings"

// Abbreviations maps a lowercase abbreviation to a lowercase canonical book name.
// An entry with an empty name is treated as if it were absent.
type Abbreviations map[string]string

// Resolve returns the canonical book name for a user-supplied book.
// Unknown books resolve to their own trimmed, lowercased form.
func (a Abbreviations) Resolve(book string) string {
	key := strings.ToLower(strings.TrimSpace(book))
	if name, ok := a[key]; ok {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			return name
		}
	}
	return key
}
