// Package prompt runs the line-oriented lookup loop used when the terminal UI is not available.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lepinkainen/verses/internal/scripture"
	"github.com/lepinkainen/verses/internal/session"
)

// Looker performs and saves lookups. *session.Session satisfies it.
type Looker interface {
	Lookup(ref scripture.Reference) session.Lookup
	Save(l session.Lookup) error
}

// Options configures the loop.
type Options struct {
	// FreeForm asks for a single "John 3:16" style reference instead of three fields.
	FreeForm bool
	// NoSave skips appending found verses to the output log.
	NoSave bool
}

const againPrompt = "Would you like to look up another verse (y/N)? "

// Run prompts for references until the user declines another lookup or input ends.
// It returns the number of verses found.
func Run(in io.Reader, out io.Writer, l Looker, opts Options) (int, error) {
	p := &prompter{in: bufio.NewScanner(in), out: out}
	found := 0

	for {
		ref, ok, err := p.readReference(opts.FreeForm)
		if err != nil {
			return found, err
		}
		if !ok {
			return found, nil
		}

		lookup := l.Lookup(ref)
		if lookup.Found() {
			found++
			p.printf("The verse you requested is:\n%s\n", lookup.Rendering.Display)
			if !opts.NoSave {
				if err := l.Save(lookup); err != nil {
					return found, err
				}
			}
		} else {
			p.printf("%s\n", lookup.Message())
			if len(lookup.Suggestions) > 0 {
				p.printf("Did you mean: %s?\n", strings.Join(lookup.Suggestions, ", "))
			}
		}

		answer, ok := p.ask(againPrompt)
		if !ok || !strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y") {
			return found, p.in.Err()
		}
	}
}

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

// ask writes a prompt and reads one line. ok is false at end of input.
func (p *prompter) ask(prompt string) (string, bool) {
	p.printf("%s", prompt)
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// readReference reads one query. ok is false when input ended before a full reference.
func (p *prompter) readReference(freeForm bool) (scripture.Reference, bool, error) {
	p.printf("Please enter the reference of the verse you would like to retrieve\n")

	if freeForm {
		for {
			line, ok := p.ask("\tthe reference: ")
			if !ok {
				return scripture.Reference{}, false, p.in.Err()
			}
			ref, err := scripture.ParseReference(line)
			if err == nil {
				return ref, true, nil
			}
			slog.Debug("Rejected reference", "input", line, "error", err)
			p.printf("Could not read %q as a reference, try something like \"John 3:16\".\n", line)
		}
	}

	fields := make([]string, 0, 3)
	for _, label := range []string{"\tthe book: ", "\tthe chapter: ", "\tthe verse: "} {
		value, ok := p.ask(label)
		if !ok {
			return scripture.Reference{}, false, p.in.Err()
		}
		fields = append(fields, value)
	}
	return scripture.Reference{Book: fields[0], Chapter: fields[1], Verse: fields[2]}, true, nil
}
