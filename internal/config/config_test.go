package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultCorpusFile, s.CorpusFile)
	assert.Equal(t, DefaultAbbreviationsFile, s.AbbreviationsFile)
	assert.Equal(t, DefaultOutputFile, s.OutputFile)
	assert.False(t, s.AliasPsalm)
	assert.False(t, s.WholeBookName)
	assert.Equal(t, DisplayInput, s.Display)
	assert.Equal(t, DefaultWidth, s.Width)
	assert.False(t, s.HistoryEnabled)
	assert.Equal(t, DefaultHistoryDBFile, s.HistoryDBFile)
}

func TestLoadOverrides(t *testing.T) {
	resetViper(t)
	SetDefaults()

	viper.Set("corpus", "/data/kjv.txt")
	viper.Set("alias_psalm", true)
	viper.Set("whole_book_name", true)
	viper.Set("display", "UPPER")
	viper.Set("width", 0)
	viper.Set("history.enabled", true)
	viper.Set("history.dbfile", "")

	s, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/data/kjv.txt", s.CorpusFile)
	assert.True(t, s.AliasPsalm)
	assert.True(t, s.WholeBookName)
	assert.Equal(t, DisplayUpper, s.Display)
	assert.Equal(t, DefaultWidth, s.Width)
	assert.True(t, s.HistoryEnabled)
	assert.Equal(t, DefaultHistoryDBFile, s.HistoryDBFile)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  any
	}{
		{name: "invalid display", key: "display", val: "sideways"},
		{name: "missing corpus", key: "corpus", val: ""},
		{name: "missing output", key: "output", val: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resetViper(t)
			SetDefaults()
			viper.Set(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestParseDisplayStyle(t *testing.T) {
	testCases := []struct {
		input    string
		expected DisplayStyle
	}{
		{"input", DisplayInput},
		{" Canonical ", DisplayCanonical},
		{"upper", DisplayUpper},
		{"", DisplayInput},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			style, err := ParseDisplayStyle(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, style)
		})
	}
}
