package scripture

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lepinkainen/verses/internal/errors"
)

// Outcome tags the result of a lookup.
type Outcome int

const (
	// Found means the verse line was located.
	Found Outcome = iota
	// BookNotFound means no book heading matched.
	BookNotFound
	// ChapterNotFound means the book has no matching chapter or psalm heading.
	ChapterNotFound
	// VerseNotFound means the chapter has no line starting with the verse number.
	VerseNotFound
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case BookNotFound:
		return "book not found"
	case ChapterNotFound:
		return "chapter not found"
	case VerseNotFound:
		return "verse not found"
	default:
		return "unknown"
	}
}

// Result is the outcome of Locate.
type Result struct {
	Outcome Outcome
	// Reference echoes the query, with chapter and verse trimmed.
	Reference Reference
	// Canonical is the normalized book name used for matching.
	Canonical string
	// Line is the verse line ("16 For God so loved...") when Outcome is Found.
	Line string
}

// Found reports whether the verse was located.
func (r Result) Found() bool {
	return r.Outcome == Found
}

// Message returns the user-facing text for a failed lookup, or "" when the verse was found.
func (r Result) Message() string {
	book := Capitalize(strings.TrimSpace(r.Reference.Book))

	switch r.Outcome {
	case BookNotFound:
		return fmt.Sprintf("The Bible does not contain the book %q.", book)
	case ChapterNotFound:
		return fmt.Sprintf("The book of %s does not have chapter %s.", book, r.Reference.Chapter)
	case VerseNotFound:
		section := "Chapter"
		if r.Canonical == psalmsBook {
			section = "Psalm"
		}
		return fmt.Sprintf("%s %s of %s does not have verse %s.", section, r.Reference.Chapter, book, r.Reference.Verse)
	default:
		return ""
	}
}

// Err converts a failed lookup into a *errors.NotFoundError. It returns nil when found.
func (r Result) Err() error {
	var level errors.Level
	switch r.Outcome {
	case BookNotFound:
		level = errors.LevelBook
	case ChapterNotFound:
		level = errors.LevelChapter
	case VerseNotFound:
		level = errors.LevelVerse
	default:
		return nil
	}

	return &errors.NotFoundError{
		Level:   level,
		Book:    r.Reference.Book,
		Chapter: r.Reference.Chapter,
		Verse:   r.Reference.Verse,
		Message: r.Message(),
	}
}

// Capitalize upper-cases the first rune of s and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}
