package session

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lepinkainen/verses/internal/csvutil"
	"github.com/lepinkainen/verses/internal/scripture"
)

type abbreviation struct {
	short string
	name  string
}

// parseAbbreviation reads an "abbreviation,canonical name" row. A row without a second column
// maps to "" and a row with a blank first column is skipped.
func parseAbbreviation(record []string) (abbreviation, error) {
	short := strings.ToLower(strings.TrimSpace(record[0]))
	if short == "" {
		return abbreviation{}, csvutil.ErrSkipRecord
	}

	a := abbreviation{short: short}
	if len(record) > 1 {
		a.name = strings.ToLower(strings.TrimSpace(record[1]))
	}
	return a, nil
}

// LoadAbbreviations reads the two-column abbreviation table at path.
// A missing file yields an empty table.
func LoadAbbreviations(path string) (scripture.Abbreviations, error) {
	abbrevs := scripture.Abbreviations{}
	if path == "" {
		return abbrevs, nil
	}

	rows, err := csvutil.ProcessCSV(path, parseAbbreviation, csvutil.ProcessorOptions{FieldsPerRecord: -1})
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Warn("Abbreviation file not found, using book names only", "file", path)
			return abbrevs, nil
		}
		return nil, fmt.Errorf("failed to load abbreviations: %w", err)
	}

	for _, row := range rows {
		abbrevs[row.short] = row.name
	}
	slog.Debug("Loaded abbreviations", "file", path, "count", len(abbrevs))
	return abbrevs, nil
}
