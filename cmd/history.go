package cmd

import (
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/lepinkainen/verses/internal/config"
	"github.com/lepinkainen/verses/internal/datastore"
	"github.com/lepinkainen/verses/internal/fileutil"
)

// HistoryCmd shows recently saved verses
type HistoryCmd struct {
	Limit  int    `short:"n" help:"Number of verses to show (0 shows all)" default:"10"`
	Format string `short:"F" help:"Output format" enum:"text,yaml" default:"text"`
}

func (h *HistoryCmd) Run() (err error) {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	if !fileutil.FileExists(settings.HistoryDBFile) {
		slog.Info("No history database yet, enable it with --save-history", "file", settings.HistoryDBFile)
		return nil
	}

	store, err := datastore.OpenHistory(settings.HistoryDBFile)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	verses, err := store.RecentVerses(h.Limit)
	if err != nil {
		return err
	}

	if h.Format == "yaml" {
		if verses == nil {
			verses = []datastore.SavedVerse{}
		}
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(verses); err != nil {
			return fmt.Errorf("failed to encode history: %w", err)
		}
		return enc.Close()
	}

	for _, v := range verses {
		if _, err := fmt.Fprintf(stdout, "%s  %s\n", v.SavedAt.Local().Format("2006-01-02 15:04"), v.Text); err != nil {
			return err
		}
	}
	return nil
}
