package intakeform

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pillziy/pillziy-cli/internal/core/domain"
)

func keyPress(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = next.(Model)
	}
	return m
}

func TestNew_PrefillsCandidateName(t *testing.T) {
	m := New(domain.IntakeDraft{CandidateName: "TYLENOL 500 MG TABLET"})

	assert.Equal(t, "TYLENOL 500 MG TABLET", m.Form().Name)
	assert.Empty(t, m.Form().Dosage)
	assert.Equal(t, domain.FrequencyOnceDaily, m.Form().Frequency)
}

func TestModel_Update_EnterConfirms(t *testing.T) {
	m := New(domain.IntakeDraft{CandidateName: "Ibuprofen"})

	next, cmd := m.Update(keyPress(tea.KeyEnter))
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.True(t, m.Confirmed())
	assert.Equal(t, "Ibuprofen", m.Form().Name)
}

func TestModel_Update_EscCancels(t *testing.T) {
	m := New(domain.IntakeDraft{CandidateName: "Ibuprofen"})

	next, cmd := m.Update(keyPress(tea.KeyEsc))
	m = next.(Model)

	require.NotNil(t, cmd)
	assert.False(t, m.Confirmed())
}

func TestModel_Update_TabCyclesFocus(t *testing.T) {
	m := New(domain.IntakeDraft{})

	next, _ := m.Update(keyPress(tea.KeyTab))
	m = next.(Model)
	assert.Equal(t, focusDosage, m.focus)

	next, _ = m.Update(keyPress(tea.KeyTab))
	m = next.(Model)
	assert.Equal(t, focusFrequency, m.focus)

	next, _ = m.Update(keyPress(tea.KeyTab))
	m = next.(Model)
	assert.Equal(t, focusName, m.focus)

	next, _ = m.Update(keyPress(tea.KeyShiftTab))
	m = next.(Model)
	assert.Equal(t, focusFrequency, m.focus)
}

func TestModel_Update_ArrowsCycleFrequency(t *testing.T) {
	m := New(domain.IntakeDraft{})
	presets := domain.FrequencyPresets()

	next, _ := m.Update(keyPress(tea.KeyTab))
	next, _ = next.(Model).Update(keyPress(tea.KeyTab))
	m = next.(Model)
	require.Equal(t, focusFrequency, m.focus)

	next, _ = m.Update(keyPress(tea.KeyRight))
	m = next.(Model)
	assert.Equal(t, presets[1], m.Form().Frequency)

	next, _ = m.Update(keyPress(tea.KeyLeft))
	m = next.(Model)
	assert.Equal(t, presets[0], m.Form().Frequency)

	next, _ = m.Update(keyPress(tea.KeyLeft))
	m = next.(Model)
	assert.Equal(t, presets[len(presets)-1], m.Form().Frequency)
}

func TestModel_Update_EditsDosageField(t *testing.T) {
	m := New(domain.IntakeDraft{CandidateName: "Aspirin"})

	next, _ := m.Update(keyPress(tea.KeyTab))
	m = typeText(next.(Model), "81mg")

	assert.Equal(t, "Aspirin", m.Form().Name)
	assert.Equal(t, "81mg", m.Form().Dosage)
}

func TestModel_View_ShowsFieldsAndHelp(t *testing.T) {
	m := New(domain.IntakeDraft{CandidateName: "Aspirin"})

	view := m.View()

	assert.Contains(t, view, "Confirm Medication")
	assert.Contains(t, view, "Medication Name")
	assert.Contains(t, view, "Dosage")
	assert.Contains(t, view, "Frequency")
	assert.Contains(t, view, "esc cancel")
}
