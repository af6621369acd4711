// Package session drives verse lookups for the command line front ends.
//
// A Session holds the corpus text, the abbreviation table and the settings for a run; every
// query passes through it. Found verses are appended to the output log and, when enabled,
// recorded in the SQLite history.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lepinkainen/verses/internal/config"
	"github.com/lepinkainen/verses/internal/datastore"
	"github.com/lepinkainen/verses/internal/fileutil"
	"github.com/lepinkainen/verses/internal/scripture"
)

// maxSuggestions caps the "did you mean" list for unknown books.
const maxSuggestions = 3

// Session is the explicit state shared by repeated queries.
type Session struct {
	settings config.Settings
	corpus   string
	abbrevs  scripture.Abbreviations
	books    []string
	history  datastore.History
}

// Lookup is the outcome of one query.
type Lookup struct {
	scripture.Result
	// Rendering is set when the verse was found.
	Rendering scripture.Rendering
	// Suggestions lists similar book names when the book was not found.
	Suggestions []string
}

// Open reads the corpus and abbreviation table named by settings and, when enabled, opens
// the history database.
func Open(settings config.Settings) (*Session, error) {
	corpus, err := fileutil.ReadText(settings.CorpusFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus: %w", err)
	}

	abbrevs, err := LoadAbbreviations(settings.AbbreviationsFile)
	if err != nil {
		return nil, err
	}

	s := New(corpus, abbrevs, settings)
	slog.Debug("Corpus loaded", "file", settings.CorpusFile, "bytes", len(corpus), "books", len(s.books))

	if settings.HistoryEnabled {
		store, err := datastore.OpenHistory(settings.HistoryDBFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		s.history = store
	}

	return s, nil
}

// New builds a Session from an in-memory corpus and abbreviation table. History is not
// recorded by sessions built this way.
func New(corpus string, abbrevs scripture.Abbreviations, settings config.Settings) *Session {
	if settings.Width <= 0 {
		settings.Width = scripture.DefaultWidth
	}
	return &Session{
		settings: settings,
		corpus:   corpus,
		abbrevs:  abbrevs,
		books:    scripture.Books(corpus),
	}
}

// UseHistory records saved verses in h from now on. The session closes h on Close.
func (s *Session) UseHistory(h datastore.History) {
	s.history = h
}

// Close releases the history database, if open.
func (s *Session) Close() error {
	if s.history == nil {
		return nil
	}
	err := s.history.Close()
	s.history = nil
	return err
}

// Books returns the book names found in the corpus.
func (s *Session) Books() []string {
	return s.books
}

// Settings returns the settings the session was built with.
func (s *Session) Settings() config.Settings {
	return s.settings
}

// Lookup locates a reference and renders it when found.
func (s *Session) Lookup(ref scripture.Reference) Lookup {
	result := scripture.Locate(s.corpus, ref, s.abbrevs, scripture.Options{
		AliasPsalm:    s.settings.AliasPsalm,
		WholeBookName: s.settings.WholeBookName,
	})
	lookup := Lookup{Result: result}

	switch result.Outcome {
	case scripture.Found:
		lookup.Rendering = scripture.FormatWidth(s.displayBook(result), result.Reference.Chapter, result.Line, s.settings.Width)
	case scripture.BookNotFound:
		lookup.Suggestions = scripture.Suggest(ref.Book, s.books, maxSuggestions)
	}

	if !result.Found() {
		slog.Debug("Lookup missed", "reference", ref.String(), "outcome", result.Outcome.String())
	}
	return lookup
}

// Save appends a found verse to the output log and records it in the history when enabled.
// Lookups that did not find a verse are never written and return their not-found error.
func (s *Session) Save(l Lookup) error {
	if err := l.Err(); err != nil {
		return err
	}
	if l.Rendering.LogLine == "" {
		return errors.New("lookup has no rendering to save")
	}

	if err := fileutil.AppendLine(s.settings.OutputFile, l.Rendering.LogLine); err != nil {
		return fmt.Errorf("failed to save verse: %w", err)
	}

	if s.history != nil {
		_, err := s.history.SaveVerse(datastore.SavedVerse{
			Reference: l.Reference.String(),
			Book:      l.Canonical,
			Chapter:   l.Reference.Chapter,
			Verse:     l.Reference.Verse,
			Text:      l.Rendering.LogLine,
		})
		if err != nil {
			return fmt.Errorf("failed to record verse history: %w", err)
		}
	}

	slog.Info("Verse saved", "reference", l.Reference.String(), "file", s.settings.OutputFile)
	return nil
}

// displayBook returns the book name shown in front of the verse.
func (s *Session) displayBook(r scripture.Result) string {
	switch s.settings.Display {
	case config.DisplayCanonical:
		words := strings.Fields(r.Canonical)
		for i, w := range words {
			words[i] = scripture.Capitalize(w)
		}
		return strings.Join(words, " ")
	case config.DisplayUpper:
		return strings.ToUpper(r.Canonical)
	default:
		return scripture.Capitalize(strings.TrimSpace(r.Reference.Book))
	}
}
