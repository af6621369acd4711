package scripture

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Reference is a verse reference exactly as the caller supplied it.
// Chapter and Verse are strings on purpose: they are matched literally against the corpus.
type Reference struct {
	Book    string `json:"book" yaml:"book"`
	Chapter string `json:"chapter" yaml:"chapter"`
	Verse   string `json:"verse" yaml:"verse"`
}

// String returns the reference as "Book Chapter:Verse".
func (r Reference) String() string {
	return fmt.Sprintf("%s %s:%s", strings.TrimSpace(r.Book), r.Chapter, r.Verse)
}

// referenceGrammar accepts "John 3:16", "1 John 4.8", "Song of Solomon 2 1" and "Psalms 23".
//
//nolint:govet // participle grammar tags are not standard struct tags
type referenceGrammar struct {
	Book    string `@Book`
	Chapter string `@Number`
	Verse   string `( ( ":" | "." )? @Number )?`
}

var referenceLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `(?:\d\s*)?[A-Za-z]+(?:\s+(?:of\s+)?[A-Za-z]+)*\.?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Separator", Pattern: `[:.]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var referenceParser = participle.MustBuild[referenceGrammar](
	participle.Lexer(referenceLexer),
	participle.Elide("Whitespace"),
)

// ParseReference parses a free-form reference such as "John 3:16".
// A reference without a verse ("Psalms 23") points at verse 1.
func ParseReference(s string) (Reference, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Reference{}, fmt.Errorf("empty reference string")
	}

	parsed, err := referenceParser.ParseString("", s)
	if err != nil {
		return Reference{}, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	ref := Reference{
		Book:    strings.TrimSpace(strings.TrimSuffix(parsed.Book, ".")),
		Chapter: parsed.Chapter,
		Verse:   parsed.Verse,
	}
	if ref.Verse == "" {
		ref.Verse = "1"
	}
	return ref, nil
}
