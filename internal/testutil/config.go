package testutil

import (
	"testing"

	"github.com/spf13/viper"
)

// ResetConfig resets viper and schedules another reset when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// SetFixtureConfig points the viper keys used by the session at the fixture files.
func SetFixtureConfig(t *testing.T, f Fixture) {
	t.Helper()

	ResetConfig(t)
	viper.Set("corpus", f.CorpusPath)
	viper.Set("abbreviations", f.AbbreviationsPath)
	viper.Set("output", f.OutputPath)
	viper.Set("history.dbfile", f.HistoryPath)
}
