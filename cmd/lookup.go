package cmd

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/verses/internal/scripture"
	"github.com/lepinkainen/verses/internal/session"
)

// LookupCmd looks up one verse
type LookupCmd struct {
	Book    string `arg:"" optional:"" help:"Book name or abbreviation"`
	Chapter string `arg:"" optional:"" help:"Chapter (or psalm) number"`
	Verse   string `arg:"" optional:"" help:"Verse number"`

	Ref    string `short:"r" help:"Free-form reference such as \"John 3:16\""`
	NoSave bool   `help:"Do not append the verse to the output file"`
	Format string `short:"F" help:"Output format" enum:"text,yaml" default:"text"`
}

type lookupOutput struct {
	Reference   string   `yaml:"reference"`
	Book        string   `yaml:"book"`
	Chapter     string   `yaml:"chapter"`
	Verse       string   `yaml:"verse"`
	Found       bool     `yaml:"found"`
	Text        string   `yaml:"text,omitempty"`
	Message     string   `yaml:"message,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty"`
}

func (l *LookupCmd) reference() (scripture.Reference, error) {
	if l.Ref != "" {
		if l.Book != "" {
			return scripture.Reference{}, fmt.Errorf("give either --ref or BOOK CHAPTER VERSE, not both")
		}
		return scripture.ParseReference(l.Ref)
	}

	if l.Book == "" || l.Chapter == "" || l.Verse == "" {
		return scripture.Reference{}, fmt.Errorf("book, chapter and verse are required (or use --ref \"John 3:16\")")
	}
	return scripture.Reference{Book: l.Book, Chapter: l.Chapter, Verse: l.Verse}, nil
}

func (l *LookupCmd) Run() error {
	ref, err := l.reference()
	if err != nil {
		return err
	}

	return withSession(func(s *session.Session) error {
		lookup := s.Lookup(ref)

		if err := l.print(lookup); err != nil {
			return err
		}
		if !lookup.Found() {
			return lookup.Err()
		}
		if l.NoSave {
			return nil
		}
		return s.Save(lookup)
	})
}

func (l *LookupCmd) print(lookup session.Lookup) error {
	if l.Format == "yaml" {
		out := lookupOutput{
			Reference:   lookup.Reference.String(),
			Book:        lookup.Canonical,
			Chapter:     lookup.Reference.Chapter,
			Verse:       lookup.Reference.Verse,
			Found:       lookup.Found(),
			Text:        lookup.Rendering.LogLine,
			Message:     lookup.Message(),
			Suggestions: lookup.Suggestions,
		}
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("failed to encode lookup: %w", err)
		}
		return enc.Close()
	}

	if lookup.Found() {
		_, err := fmt.Fprintln(stdout, lookup.Rendering.Display)
		return err
	}

	if _, err := fmt.Fprintln(stdout, lookup.Message()); err != nil {
		return err
	}
	if len(lookup.Suggestions) > 0 {
		_, err := fmt.Fprintf(stdout, "Did you mean: %s?\n", strings.Join(lookup.Suggestions, ", "))
		return err
	}
	return nil
}
