package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrSkipRecord can be returned by a parser to drop a record without logging it.
var ErrSkipRecord = errors.New("skip record")

// ProcessorOptions configures CSV processing behavior.
type ProcessorOptions struct {
	// FieldsPerRecord sets the expected number of fields per record.
	// If 0, it's set to the number of fields in the first record.
	// If negative, records may have a variable number of fields.
	FieldsPerRecord int

	// HasHeader skips the first record.
	HasHeader bool

	// SkipInvalid controls whether to skip invalid records or return an error.
	SkipInvalid bool
}

// ProcessCSV reads a CSV file and parses each record into type T.
// The parser function converts a CSV record ([]string) into the target type.
// An empty file yields no items and no error.
func ProcessCSV[T any](filename string, parser func([]string) (T, error), opts ProcessorOptions) ([]T, error) {
	csvFile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = csvFile.Close() }()

	return ProcessReader(csvFile, parser, opts)
}

// ProcessReader is ProcessCSV for an already opened reader.
func ProcessReader[T any](r io.Reader, parser func([]string) (T, error), opts ProcessorOptions) ([]T, error) {
	reader := csv.NewReader(r)
	if opts.FieldsPerRecord != 0 {
		reader.FieldsPerRecord = opts.FieldsPerRecord
	}

	if opts.HasHeader {
		if _, err := reader.Read(); err != nil {
			if err == io.EOF {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
	}

	var items []T

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// csv.Reader resumes after a malformed row; any other error repeats forever.
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				slog.Warn("Skipping malformed CSV row", "line", parseErr.Line, "error", err)
				continue
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		item, err := parser(record)
		if errors.Is(err, ErrSkipRecord) {
			continue
		}
		if err != nil {
			if opts.SkipInvalid {
				slog.Warn("Skipping invalid record", "error", err)
				continue
			}
			return nil, fmt.Errorf("invalid record: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
