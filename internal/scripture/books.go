package scripture

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Books returns the book names of a corpus in the order their headings appear.
func Books(corpus string) []string {
	matches := bookHeadingRe.FindAllStringSubmatch(corpus, -1)
	books := make([]string, 0, len(matches))
	for _, m := range matches {
		books = append(books, m[1])
	}
	return books
}

// Suggest returns up to limit book names that fuzzily match input, best match first.
func Suggest(input string, books []string, limit int) []string {
	pattern := strings.ToLower(strings.TrimSpace(input))
	if pattern == "" || len(books) == 0 || limit <= 0 {
		return nil
	}

	lowered := make([]string, len(books))
	for i, b := range books {
		lowered[i] = strings.ToLower(b)
	}

	matches := fuzzy.Find(pattern, lowered)
	if matches.Len() > limit {
		matches = matches[:limit]
	}

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, books[m.Index])
	}
	return suggestions
}
