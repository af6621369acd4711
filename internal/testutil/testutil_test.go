package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestTestEnv_Path(t *testing.T) {
	env := NewTestEnv(t)

	path := env.Path("subdir", "file.txt")
	assert.True(t, filepath.IsAbs(path))
	assert.Contains(t, path, "subdir")
	assert.Contains(t, path, "file.txt")
}

func TestTestEnv_isWithinSandbox(t *testing.T) {
	env := NewTestEnv(t)

	assert.True(t, env.isWithinSandbox(env.RootDir()))
	assert.True(t, env.isWithinSandbox(filepath.Join(env.RootDir(), "a", "b")))
	assert.False(t, env.isWithinSandbox(filepath.Dir(env.RootDir())))
	assert.False(t, env.isWithinSandbox(env.RootDir()+"-sibling"))
}

func TestTestEnv_WriteReadFileString(t *testing.T) {
	env := NewTestEnv(t)

	env.WriteFileString("nested/test.txt", "test string content")

	assert.True(t, env.FileExists("nested/test.txt"))
	assert.Equal(t, "test string content", env.ReadFileString("nested/test.txt"))
	assert.False(t, env.FileExists("missing.txt"))
}

func TestTestEnv_WriteFixtures(t *testing.T) {
	env := NewTestEnv(t)

	f := env.WriteFixtures()

	assert.Equal(t, SampleCorpus, env.ReadFileString("bible.txt"))
	assert.Equal(t, SampleAbbreviations, env.ReadFileString("abbreviations.csv"))
	assert.Equal(t, env.Path("verses.txt"), f.OutputPath)
	assert.False(t, env.FileExists("verses.txt"))
}

func TestSetFixtureConfig(t *testing.T) {
	env := NewTestEnv(t)
	f := env.WriteFixtures()

	SetFixtureConfig(t, f)

	assert.Equal(t, f.CorpusPath, viper.GetString("corpus"))
	assert.Equal(t, f.AbbreviationsPath, viper.GetString("abbreviations"))
	assert.Equal(t, f.OutputPath, viper.GetString("output"))
	assert.Equal(t, f.HistoryPath, viper.GetString("history.dbfile"))
}
