package scripture

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultWidth is the column at which display text is wrapped.
const DefaultWidth = 80

// Rendering is a formatted verse.
type Rendering struct {
	// Display is the verse wrapped at word boundaries.
	Display string
	// LogLine is the unwrapped single-line form written to the output log.
	LogLine string
}

// Format renders a verse line wrapped at DefaultWidth.
func Format(bookDisplay, chapter, verseLine string) Rendering {
	return FormatWidth(bookDisplay, chapter, verseLine, DefaultWidth)
}

// FormatWidth renders a verse line wrapped at width columns.
func FormatWidth(bookDisplay, chapter, verseLine string, width int) Rendering {
	tokens := Tokens(bookDisplay, chapter, verseLine)
	return Rendering{
		Display: Wrap(tokens, width),
		LogLine: strings.Join(tokens, " "),
	}
}

// Tokens splits a verse into words. The first token fuses the book, chapter and verse number
// ("John 3:16"); the remaining tokens are the words of the verse text.
func Tokens(bookDisplay, chapter, verseLine string) []string {
	words := strings.Split(verseLine, " ")
	tokens := make([]string, 0, len(words))
	tokens = append(tokens, fmt.Sprintf("%s %s:%s", bookDisplay, chapter, words[0]))
	return append(tokens, words[1:]...)
}

// Wrap joins tokens with spaces, starting a new line whenever the next token would push the
// current line past width characters. A width <= 0 uses DefaultWidth.
func Wrap(tokens []string, width int) string {
	if len(tokens) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultWidth
	}

	var sb strings.Builder
	sb.WriteString(tokens[0])
	lineLen := utf8.RuneCountInString(tokens[0])

	for _, token := range tokens[1:] {
		n := utf8.RuneCountInString(token)
		if lineLen+1+n <= width {
			sb.WriteByte(' ')
			lineLen += 1 + n
		} else {
			sb.WriteByte('\n')
			lineLen = n
		}
		sb.WriteString(token)
	}

	return sb.String()
}
