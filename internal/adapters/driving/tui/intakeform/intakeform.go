// Package intakeform provides the interactive confirmation step of the
// scan flow: an editable name and dosage, a frequency selection, and
// explicit confirm/cancel. No record exists until the user confirms.
package intakeform

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
	"github.com/pillziy/pillziy-cli/internal/core/ports/driving"
)

// Focusable fields in tab order.
const (
	focusName = iota
	focusDosage
	focusFrequency
	focusCount
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Result carries the user's decision out of the form.
type Result struct {
	Form      driving.IntakeForm
	Confirmed bool
}

// Model is the bubbletea model for the confirmation form.
type Model struct {
	name      textinput.Model
	dosage    textinput.Model
	presets   []domain.Frequency
	freqIndex int
	focus     int

	confirmed bool
	done      bool
}

// New creates the form prefilled from a scan draft.
func New(draft domain.IntakeDraft) Model {
	name := textinput.New()
	name.Placeholder = "e.g. Tylenol 500"
	name.CharLimit = 100
	name.Width = 40
	name.SetValue(draft.CandidateName)
	name.Focus()

	dosage := textinput.New()
	dosage.Placeholder = "e.g. 500mg"
	dosage.CharLimit = 50
	dosage.Width = 40

	return Model{
		name:    name,
		dosage:  dosage,
		presets: domain.FrequencyPresets(),
	}
}

// Init initialises the form.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.Type {
	case tea.KeyEsc, tea.KeyCtrlC:
		m.confirmed = false
		m.done = true
		return m, tea.Quit

	case tea.KeyTab, tea.KeyDown:
		return m.setFocus((m.focus + 1) % focusCount), nil

	case tea.KeyShiftTab, tea.KeyUp:
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil

	case tea.KeyLeft:
		if m.focus == focusFrequency {
			m.freqIndex = (m.freqIndex + len(m.presets) - 1) % len(m.presets)
			return m, nil
		}

	case tea.KeyRight:
		if m.focus == focusFrequency {
			m.freqIndex = (m.freqIndex + 1) % len(m.presets)
			return m, nil
		}

	case tea.KeyEnter:
		m.confirmed = true
		m.done = true
		return m, tea.Quit
	}

	return m.updateInputs(msg)
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	m.dosage, cmd = m.dosage.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) setFocus(focus int) Model {
	m.focus = focus
	m.name.Blur()
	m.dosage.Blur()

	switch focus {
	case focusName:
		m.name.Focus()
	case focusDosage:
		m.dosage.Focus()
	}
	return m
}

// View renders the form.
func (m Model) View() string {
	if m.done {
		return ""
	}

	freq := make([]string, len(m.presets))
	for i, preset := range m.presets {
		if i == m.freqIndex {
			freq[i] = selectedStyle.Render("[" + preset.String() + "]")
		} else {
			freq[i] = labelStyle.Render(" " + preset.String() + " ")
		}
	}

	return fmt.Sprintf(
		"%s\n\n%s\n%s\n\n%s\n%s\n\n%s\n%s\n\n%s\n",
		titleStyle.Render("Confirm Medication"),
		labelStyle.Render("Medication Name"),
		m.name.View(),
		labelStyle.Render("Dosage"),
		m.dosage.View(),
		labelStyle.Render("Frequency (left/right to change)"),
		lipgloss.JoinHorizontal(lipgloss.Top, freq...),
		helpStyle.Render("enter confirm • tab next field • esc cancel"),
	)
}

// Confirmed reports whether the user confirmed the form.
func (m Model) Confirmed() bool {
	return m.confirmed
}

// Form returns the edited fields.
func (m Model) Form() driving.IntakeForm {
	return driving.IntakeForm{
		Name:      m.name.Value(),
		Dosage:    m.dosage.Value(),
		Frequency: m.presets[m.freqIndex],
	}
}

// Run drives the form to completion on the terminal.
func Run(draft domain.IntakeDraft) (Result, error) {
	final, err := tea.NewProgram(New(draft)).Run()
	if err != nil {
		return Result{}, err
	}

	model, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return Result{Form: model.Form(), Confirmed: model.Confirmed()}, nil
}
