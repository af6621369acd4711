package scripture

import (
	"regexp"
	"strings"
)

const (
	bookMarker    = "THE BOOK OF"
	chapterMarker = "CHAPTER"
	psalmMarker   = "PSALM"

	psalmsBook = "psalms"
)

var (
	bookBoundaryRe = regexp.MustCompile(`(?m)^[ \t]*` + bookMarker + `\b`)
	bookHeadingRe  = regexp.MustCompile(`(?m)^[ \t]*` + bookMarker + `[ \t]+(.+?)[ \t]*\r?$`)

	sectionBoundaryRe = map[string]*regexp.Regexp{
		chapterMarker: regexp.MustCompile(`(?m)^[ \t]*` + chapterMarker + `\b`),
		psalmMarker:   regexp.MustCompile(`(?m)^[ \t]*` + psalmMarker + `\b`),
	}
)

// Options selects normalization behavior for Locate.
type Options struct {
	// AliasPsalm maps the canonical name "psalm" to "psalms" without consulting the
	// abbreviation table.
	AliasPsalm bool
	// WholeBookName requires the heading name to end at a non-alphanumeric character, so
	// "john" no longer opens "THE BOOK OF JOHNSON". Off, the first heading whose name starts
	// with the canonical name wins.
	WholeBookName bool
}

// Locate finds the verse a reference points at.
//
// The search runs in three stages (book, chapter, verse); the first failing stage decides the
// Outcome and the remaining stages are skipped. At every stage the first match wins.
func Locate(corpus string, ref Reference, abbrevs Abbreviations, opts Options) Result {
	ref.Chapter = strings.TrimSpace(ref.Chapter)
	ref.Verse = strings.TrimSpace(ref.Verse)

	canonical := abbrevs.Resolve(ref.Book)
	if opts.AliasPsalm && canonical == "psalm" {
		canonical = psalmsBook
	}

	result := Result{Reference: ref, Canonical: canonical}

	book, ok := findBook(corpus, canonical, opts.WholeBookName)
	if !ok {
		result.Outcome = BookNotFound
		return result
	}

	chapter, ok := findSection(book, sectionMarker(canonical), ref.Chapter)
	if !ok {
		result.Outcome = ChapterNotFound
		return result
	}

	line, ok := findVerse(chapter, ref.Verse)
	if !ok {
		result.Outcome = VerseNotFound
		return result
	}

	result.Outcome = Found
	result.Line = line
	return result
}

// sectionMarker returns the heading token chapters use in the given book.
func sectionMarker(canonical string) string {
	if canonical == psalmsBook {
		return psalmMarker
	}
	return chapterMarker
}

// findBook returns the text after the first heading whose name starts with canonical, up to the
// next book heading.
func findBook(corpus, canonical string, wholeName bool) (string, bool) {
	words := strings.Fields(canonical)
	if len(words) == 0 {
		return "", false
	}
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}

	pattern := `(?m)^[ \t]*` + bookMarker + `[ \t]+(?i:` + strings.Join(words, `[ \t]+`) + `)`
	if wholeName {
		pattern += `(?:[^\pL\pN]|$)`
	}
	heading := regexp.MustCompile(pattern)
	loc := heading.FindStringIndex(corpus)
	if loc == nil {
		return "", false
	}

	return sectionBody(corpus, loc[0], bookBoundaryRe), true
}

// findSection returns the body of the first "<marker> <number>" heading in text.
// The number must be followed by the end of the line, so "1" never matches "10".
func findSection(text, marker, number string) (string, bool) {
	if number == "" {
		return "", false
	}

	heading := regexp.MustCompile(`(?m)^[ \t]*` + marker + `[ \t]+` + regexp.QuoteMeta(number) + `[ \t]*\r?$`)
	loc := heading.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	return sectionBody(text, loc[0], sectionBoundaryRe[marker]), true
}

// sectionBody returns the text from the line after the heading at start up to the next line
// matched by boundary, or the end of text.
func sectionBody(text string, start int, boundary *regexp.Regexp) string {
	bodyStart := len(text)
	if nl := strings.IndexByte(text[start:], '\n'); nl >= 0 {
		bodyStart = start + nl + 1
	}

	body := text[bodyStart:]
	if next := boundary.FindStringIndex(body); next != nil {
		body = body[:next[0]]
	}
	return body
}

// findVerse returns the first trimmed line of chapter that starts with "<verse> ".
func findVerse(chapter, verse string) (string, bool) {
	if verse == "" {
		return "", false
	}

	prefix := verse + " "
	for _, line := range strings.Split(chapter, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
	return "", false
}
