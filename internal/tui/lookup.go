// Package tui provides the interactive terminal UI for verse lookups.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/verses/internal/errors"
	"github.com/lepinkainen/verses/internal/scripture"
	"github.com/lepinkainen/verses/internal/session"
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// Looker performs and saves lookups. *session.Session satisfies it.
type Looker interface {
	Lookup(ref scripture.Reference) session.Lookup
	Save(l session.Lookup) error
}

// Options configures the lookup UI.
type Options struct {
	// FreeForm shows a single reference field instead of book, chapter and verse fields.
	FreeForm bool
	// NoSave skips appending found verses to the output log.
	NoSave bool
}

// Summary counts what happened during a UI session.
type Summary struct {
	Lookups int
	Found   int
	Saved   int
}

type stage int

const (
	stageEditing stage = iota
	stageResult
)

type model struct {
	looker Looker
	opts   Options

	labels []string
	inputs []textinput.Model
	focus  int

	stage   stage
	lookup  session.Lookup
	problem string

	summary Summary
	err     error
}

func newModel(l Looker, opts Options) *model {
	labels := []string{"Book", "Chapter", "Verse"}
	placeholders := []string{"John", "3", "16"}
	if opts.FreeForm {
		labels = []string{"Reference"}
		placeholders = []string{"John 3:16"}
	}

	inputs := make([]textinput.Model, len(labels))
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 64
		in.Width = 40
		inputs[i] = in
	}
	inputs[0].Focus()

	return &model{
		looker: l,
		opts:   opts,
		labels: labels,
		inputs: inputs,
	}
}

func (m *model) Init() tea.Cmd { return textinput.Blink }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if key.Type == tea.KeyCtrlC {
			m.err = &errors.StopProcessingError{Reason: errors.ReasonInterrupted, Lookups: m.summary.Lookups}
			return m, tea.Quit
		}
		if m.stage == stageResult {
			return m.updateResult(key)
		}
		return m.updateEditing(key)
	}

	if m.stage == stageEditing {
		return m, m.updateInputs(msg)
	}
	return m, nil
}

func (m *model) updateEditing(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab, tea.KeyDown:
		return m, m.setFocus(m.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m, m.setFocus(m.focus - 1)
	case tea.KeyEnter:
		if m.focus < len(m.inputs)-1 {
			return m, m.setFocus(m.focus + 1)
		}
		if m.submit() {
			return m, tea.Quit
		}
		return m, nil
	}
	return m, m.updateInputs(key)
}

func (m *model) updateResult(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch strings.ToLower(key.String()) {
	case "y", "enter":
		m.reset()
		return m, textinput.Blink
	case "n", "q", "esc":
		return m, tea.Quit
	}
	return m, nil
}

// submit runs the lookup for the current field values. It reports whether the program
// should exit because of an error.
func (m *model) submit() bool {
	m.problem = ""

	var ref scripture.Reference
	if m.opts.FreeForm {
		parsed, err := scripture.ParseReference(m.inputs[0].Value())
		if err != nil {
			m.problem = fmt.Sprintf("Could not read %q as a reference, try something like \"John 3:16\".", m.inputs[0].Value())
			return false
		}
		ref = parsed
	} else {
		ref = scripture.Reference{
			Book:    m.inputs[0].Value(),
			Chapter: m.inputs[1].Value(),
			Verse:   m.inputs[2].Value(),
		}
	}

	m.lookup = m.looker.Lookup(ref)
	m.summary.Lookups++
	m.stage = stageResult
	for i := range m.inputs {
		m.inputs[i].Blur()
	}

	if !m.lookup.Found() {
		return false
	}
	m.summary.Found++
	if m.opts.NoSave {
		return false
	}
	if err := m.looker.Save(m.lookup); err != nil {
		m.err = err
		return true
	}
	m.summary.Saved++
	return false
}

func (m *model) reset() {
	m.stage = stageEditing
	m.lookup = session.Lookup{}
	m.problem = ""
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.setFocus(0)
}

func (m *model) setFocus(i int) tea.Cmd {
	if i < 0 {
		i = len(m.inputs) - 1
	}
	m.focus = i % len(m.inputs)

	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m *model) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *model) View() string {
	rows := []string{headerStyle.Render("Look up a verse")}
	for i, in := range m.inputs {
		label := labelStyle
		if i == m.focus && m.stage == stageEditing {
			label = focusedLabelStyle
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label.Render(m.labels[i]), in.View()))
	}

	if m.problem != "" {
		rows = append(rows, "", missStyle.Render(m.problem))
	}

	if m.stage == stageResult {
		rows = append(rows, "", m.resultView())
		rows = append(rows, helpStyle.Render("Look up another verse? y/Enter yes | n/Esc no"))
	} else {
		rows = append(rows, helpStyle.Render("Tab/Up/Down move | Enter look up | Esc quit"))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *model) resultView() string {
	if !m.lookup.Found() {
		view := missStyle.Render(m.lookup.Message())
		if len(m.lookup.Suggestions) > 0 {
			view = lipgloss.JoinVertical(lipgloss.Left, view,
				suggestionStyle.Render("Did you mean: "+strings.Join(m.lookup.Suggestions, ", ")+"?"))
		}
		return view
	}

	status := "Saved"
	if m.opts.NoSave {
		status = "Not saved"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		verseStyle.Render(m.lookup.Rendering.Display),
		statusStyle.Render(status),
	)
}

// Run shows the lookup UI until the user declines another lookup. Ctrl+C ends the UI with a
// StopProcessingError.
func Run(l Looker, opts Options) (Summary, error) {
	finalModel, err := runProgram(newModel(l, opts))
	if err != nil {
		return Summary{}, err
	}

	typed, ok := finalModel.(*model)
	if !ok {
		return Summary{}, fmt.Errorf("unexpected program result")
	}
	return typed.summary, typed.err
}
