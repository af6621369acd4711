// Package testutil provides common test utilities for the verses project.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// SampleCorpus is a small corpus that follows the heading conventions of a full text.
const SampleCorpus = `THE BOOK OF GENESIS
CHAPTER 1
1 In the beginning God created the heaven and the earth.
2 And the earth was without form, and void; and darkness was upon the face of the deep.
THE BOOK OF PSALMS
PSALM 23
1 The LORD is my shepherd; I shall not want.
THE BOOK OF JOHN
CHAPTER 1
1 In the beginning was the Word, and the Word was with God, and the Word was God.
CHAPTER 3
16 For God so loved the world, that he gave his only begotten Son, that whosoever believeth in him should not perish, but have everlasting life.
CHAPTER 10
1 Verily, verily, I say unto you, He that entereth not by the door into the sheepfold.
`

// SampleAbbreviations is an abbreviation table for SampleCorpus. The "john" row has no
// second column on purpose.
const SampleAbbreviations = `gen,genesis
jn,john
ps,psalms
psalm,psalms
john
,orphan
`

// TestEnv provides a sandboxed test environment that validates all paths
// stay within a temporary directory. It automatically cleans up when the
// test completes.
type TestEnv struct {
	t       *testing.T
	rootDir string
}

// Fixture holds the paths written by WriteFixtures.
type Fixture struct {
	CorpusPath        string
	AbbreviationsPath string
	OutputPath        string
	HistoryPath       string
}

// NewTestEnv creates a new sandboxed test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	return &TestEnv{
		t:       t,
		rootDir: t.TempDir(),
	}
}

// RootDir returns the root directory of the test environment.
func (e *TestEnv) RootDir() string {
	return e.rootDir
}

// Path returns an absolute path within the test environment.
// It validates that the path does not escape the sandbox.
func (e *TestEnv) Path(elem ...string) string {
	e.t.Helper()

	cleanPath := filepath.Clean(filepath.Join(e.rootDir, filepath.Join(elem...)))
	if !e.isWithinSandbox(cleanPath) {
		e.t.Fatalf("path %q escapes test sandbox %q", cleanPath, e.rootDir)
	}

	return cleanPath
}

func (e *TestEnv) isWithinSandbox(path string) bool {
	cleanRoot := filepath.Clean(e.rootDir)
	cleanPath := filepath.Clean(path)
	return strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) || cleanPath == cleanRoot
}

// WriteFileString writes a string to a file within the test environment,
// creating any necessary parent directories.
func (e *TestEnv) WriteFileString(path, content string) {
	e.t.Helper()

	absPath := e.Path(path)
	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		e.t.Fatalf("failed to create directory for %q: %v", absPath, err)
	}
	if err := os.WriteFile(absPath, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write file %q: %v", absPath, err)
	}
}

// ReadFileString reads a file as a string from within the test environment.
func (e *TestEnv) ReadFileString(path string) string {
	e.t.Helper()

	content, err := os.ReadFile(e.Path(path))
	if err != nil {
		e.t.Fatalf("failed to read file %q: %v", path, err)
	}
	return string(content)
}

// FileExists checks if a file exists within the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	_, err := os.Stat(e.Path(path))
	return err == nil
}

// WriteFixtures writes SampleCorpus and SampleAbbreviations into the environment and returns
// their paths along with unused paths for the output log and history database.
func (e *TestEnv) WriteFixtures() Fixture {
	e.t.Helper()

	e.WriteFileString("bible.txt", SampleCorpus)
	e.WriteFileString("abbreviations.csv", SampleAbbreviations)

	return Fixture{
		CorpusPath:        e.Path("bible.txt"),
		AbbreviationsPath: e.Path("abbreviations.csv"),
		OutputPath:        e.Path("verses.txt"),
		HistoryPath:       e.Path("history.db"),
	}
}
