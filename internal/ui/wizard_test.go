package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestWizard_NameEntry(t *testing.T) {
	w := NewWizard("Helse Vest", "")

	_, _ = w.Update(keyRunes("EPJ"))
	assert.Equal(t, "EPJ", w.systemName)

	_, _ = w.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "EP", w.systemName)

	// Enter without a name stays on the name step.
	w.systemName = "   "
	_, _ = w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 0, w.step)

	w.systemName = "Journalsystem"
	_, _ = w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, w.step)
}

func TestWizard_SingleSelectAdvances(t *testing.T) {
	w := NewWizard("", "")
	w.systemName = "Test"
	w.step = 1

	// Skip ahead to the first single-select question.
	for w.currentQuestion().MultiSelect {
		_, _ = w.Update(keyRunes("s"))
	}
	q := w.currentQuestion()
	require.NotNil(t, q)

	_, _ = w.Update(keyRunes("j"))
	assert.Equal(t, 1, w.cursor)

	step := w.step
	_, _ = w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, step+1, w.step)
	assert.Equal(t, []string{q.Options[1].ID}, w.answers.Selected(q.ID))
}

func TestWizard_MultiSelectToggle(t *testing.T) {
	w := NewWizard("", "")
	w.systemName = "Test"
	w.step = 1

	// First question is data_type, which is multi-select.
	q := w.currentQuestion()
	require.NotNil(t, q)
	require.True(t, q.MultiSelect)

	_, _ = w.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, w.answers.Includes(q.ID, q.Options[0].ID))

	_, _ = w.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, w.answers.Includes(q.ID, q.Options[0].ID))

	// Enter advances regardless of selections.
	_, _ = w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 2, w.step)
}

func TestWizard_PreviousStep(t *testing.T) {
	w := NewWizard("", "")
	w.systemName = "Test"
	w.step = 3

	_, _ = w.Update(keyRunes("p"))
	assert.Equal(t, 2, w.step)

	w.step = 1
	_, _ = w.Update(keyRunes("p"))
	assert.Equal(t, 1, w.step)
}

func TestWizard_CompletionBuildsAssessment(t *testing.T) {
	w := NewWizard("Helse Vest", "Kari Nordmann")
	w.systemName = "Journalsystem"
	w.answers.Set("data_type", "health")
	w.answers.Set("patient_data", "yes")
	w.step = w.confirmStep()

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(AssessmentDoneMsg)
	require.True(t, ok)
	require.NotNil(t, done.Assessment)

	assert.Equal(t, "Journalsystem", done.Assessment.SystemName)
	assert.Equal(t, "Helse Vest", done.Assessment.Organization)
	assert.Equal(t, 3, done.Assessment.RecommendedLevel)
}

func TestWizard_ViewShowsPreview(t *testing.T) {
	w := NewWizard("", "")
	w.systemName = "Test"
	w.step = 1
	w.SetSize(100, 40)
	w.answers.Set("data_type", "health")

	view := w.View()
	assert.Contains(t, view, "Spørsmål 1 av")
	assert.Contains(t, view, "Foreløpig vurdering")
	assert.Contains(t, view, "Nivå 3")
}
