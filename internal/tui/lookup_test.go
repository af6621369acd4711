package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/verses/internal/config"
	"github.com/lepinkainen/verses/internal/errors"
	"github.com/lepinkainen/verses/internal/scripture"
	"github.com/lepinkainen/verses/internal/session"
	"github.com/lepinkainen/verses/internal/testutil"
)

type recordingLooker struct {
	*session.Session
	saved []string
}

func (r *recordingLooker) Save(l session.Lookup) error {
	r.saved = append(r.saved, l.Rendering.LogLine)
	return nil
}

func newLooker() *recordingLooker {
	abbrevs := scripture.Abbreviations{"gen": "genesis", "ps": "psalms"}
	return &recordingLooker{Session: session.New(testutil.SampleCorpus, abbrevs, config.Settings{})}
}

func typeText(m *model, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(m *model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_LookupAndSave(t *testing.T) {
	looker := newLooker()
	m := newModel(looker, Options{})

	typeText(m, "gen")
	press(m, tea.KeyEnter)
	typeText(m, "1")
	press(m, tea.KeyEnter)
	typeText(m, "2")
	assert.Equal(t, 2, m.focus)

	cmd := press(m, tea.KeyEnter)
	assert.False(t, isQuit(cmd))
	require.Equal(t, stageResult, m.stage)
	assert.True(t, m.lookup.Found())
	assert.Equal(t, Summary{Lookups: 1, Found: 1, Saved: 1}, m.summary)
	require.Len(t, looker.saved, 1)
	assert.Contains(t, looker.saved[0], "Gen 1:2 And the earth")
	assert.Contains(t, m.View(), "Saved")

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.True(t, isQuit(cmd))
}

func TestModel_AnotherLookupResetsFields(t *testing.T) {
	m := newModel(newLooker(), Options{})

	typeText(m, "john")
	press(m, tea.KeyTab)
	typeText(m, "99")
	press(m, tea.KeyTab)
	typeText(m, "1")
	press(m, tea.KeyEnter)

	require.Equal(t, stageResult, m.stage)
	assert.Equal(t, scripture.ChapterNotFound, m.lookup.Outcome)
	assert.Contains(t, m.View(), "The book of John does not have chapter 99.")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.False(t, isQuit(cmd))
	assert.Equal(t, stageEditing, m.stage)
	assert.Equal(t, 0, m.focus)
	for _, in := range m.inputs {
		assert.Empty(t, in.Value())
	}
	assert.Equal(t, Summary{Lookups: 1}, m.summary)
}

func TestModel_FocusWraps(t *testing.T) {
	m := newModel(newLooker(), Options{})

	press(m, tea.KeyShiftTab)
	assert.Equal(t, 2, m.focus)
	press(m, tea.KeyDown)
	assert.Equal(t, 0, m.focus)
}

func TestModel_FreeForm(t *testing.T) {
	looker := newLooker()
	m := newModel(looker, Options{FreeForm: true, NoSave: true})
	require.Len(t, m.inputs, 1)

	typeText(m, "not a reference ???")
	press(m, tea.KeyEnter)
	assert.Equal(t, stageEditing, m.stage)
	assert.Contains(t, m.problem, "Could not read")

	m.inputs[0].SetValue("ps 23:1")
	press(m, tea.KeyEnter)
	require.Equal(t, stageResult, m.stage)
	assert.True(t, m.lookup.Found())
	assert.Empty(t, looker.saved)
	assert.Contains(t, m.View(), "Not saved")
}

func TestModel_SuggestionsShown(t *testing.T) {
	m := newModel(newLooker(), Options{FreeForm: true})
	m.inputs[0].SetValue("Gnesis 1:1")
	press(m, tea.KeyEnter)

	assert.Equal(t, scripture.BookNotFound, m.lookup.Outcome)
	assert.Contains(t, m.View(), "Did you mean: GENESIS?")
}

func TestModel_CtrlCStops(t *testing.T) {
	m := newModel(newLooker(), Options{})

	cmd := press(m, tea.KeyCtrlC)
	assert.True(t, isQuit(cmd))
	assert.True(t, errors.IsStopProcessingError(m.err))
	assert.EqualError(t, m.err, "lookup session stopped: interrupted")
}

func TestModel_CtrlCCountsLookups(t *testing.T) {
	m := newModel(newLooker(), Options{FreeForm: true, NoSave: true})
	m.inputs[0].SetValue("gen 1:1")
	press(m, tea.KeyEnter)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	press(m, tea.KeyCtrlC)

	var stop *errors.StopProcessingError
	require.ErrorAs(t, m.err, &stop)
	assert.Equal(t, 1, stop.Lookups)
	assert.Equal(t, errors.ReasonInterrupted, stop.Reason)
}

func TestModel_EscQuits(t *testing.T) {
	m := newModel(newLooker(), Options{})

	cmd := press(m, tea.KeyEsc)
	assert.True(t, isQuit(cmd))
	assert.NoError(t, m.err)
}

func TestRun(t *testing.T) {
	original := runProgram
	t.Cleanup(func() { runProgram = original })

	runProgram = func(tm tea.Model) (tea.Model, error) {
		m := tm.(*model)
		m.inputs[0].SetValue("gen")
		m.inputs[1].SetValue("1")
		m.inputs[2].SetValue("1")
		m.setFocus(2)
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return m, nil
	}

	summary, err := Run(newLooker(), Options{})
	require.NoError(t, err)
	assert.Equal(t, Summary{Lookups: 1, Found: 1, Saved: 1}, summary)
}
