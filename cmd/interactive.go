package cmd

import (
	"log/slog"

	"github.com/lepinkainen/verses/internal/prompt"
	"github.com/lepinkainen/verses/internal/session"
	"github.com/lepinkainen/verses/internal/tui"
)

// InteractiveCmd repeats lookups until the user declines another
type InteractiveCmd struct {
	Plain    bool `help:"Use plain line prompts instead of the terminal UI"`
	FreeForm bool `help:"Ask for a single reference such as \"John 3:16\" instead of three fields"`
	NoSave   bool `help:"Do not append found verses to the output file"`
}

func (i *InteractiveCmd) Run() error {
	return withSession(func(s *session.Session) error {
		if i.Plain || !isTerminal() {
			found, err := prompt.Run(stdin, stdout, s, prompt.Options{FreeForm: i.FreeForm, NoSave: i.NoSave})
			slog.Debug("Interactive session finished", "found", found)
			return err
		}

		summary, err := runTUI(s, tui.Options{FreeForm: i.FreeForm, NoSave: i.NoSave})
		slog.Debug("Interactive session finished", "lookups", summary.Lookups, "found", summary.Found, "saved", summary.Saved)
		return err
	})
}
