package errors

import (
	stdErrors "errors"
	"fmt"
)

// Level identifies which stage of a verse lookup failed.
type Level int

const (
	// LevelBook means no book heading matched the requested book.
	LevelBook Level = iota + 1
	// LevelChapter means the book exists but the chapter heading does not.
	LevelChapter
	// LevelVerse means the chapter exists but has no such verse line.
	LevelVerse
)

func (l Level) String() string {
	switch l {
	case LevelBook:
		return "book"
	case LevelChapter:
		return "chapter"
	case LevelVerse:
		return "verse"
	default:
		return "unknown"
	}
}

// NotFoundError reports a lookup that stopped at the given level.
// Message holds the user-facing text for the failure.
type NotFoundError struct {
	Level   Level
	Book    string
	Chapter string
	Verse   string
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found: %s %s:%s", e.Level, e.Book, e.Chapter, e.Verse)
}

// IsNotFoundError reports whether err is a NotFoundError (even when wrapped).
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return stdErrors.As(err, &nf)
}

// NotFoundLevel returns the level of a wrapped NotFoundError, or 0 if err is not one.
func NotFoundLevel(err error) Level {
	var nf *NotFoundError
	if stdErrors.As(err, &nf) {
		return nf.Level
	}
	return 0
}
