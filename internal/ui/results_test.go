package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/scoring"
)

func testResultsAssessment() *models.Assessment {
	a := scoring.NewAnswers()
	a.Set("data_type", "health")
	a.Set("patient_data", "yes")
	a.Set("network_exposure", "helsenett")
	a.Set("regulatory", "normen")
	return models.Build("Journalsystem", "Helse Vest", "", a)
}

func TestResults_View(t *testing.T) {
	r := NewResults(testResultsAssessment())
	r.SetSize(100, 40)

	view := r.View()
	assert.Contains(t, view, "Journalsystem")
	assert.Contains(t, view, "Nivå 3")
	assert.Contains(t, view, "Risikoer")
	assert.Contains(t, view, "Påkrevde tiltak")
}

func TestResults_ReportKey(t *testing.T) {
	a := testResultsAssessment()
	r := NewResults(a)

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)

	msg := cmd()
	reportMsg, ok := msg.(GenerateReportMsg)
	require.True(t, ok)
	assert.Equal(t, a.ID, reportMsg.ID)
}

func TestResults_ScenarioKey(t *testing.T) {
	r := NewResults(testResultsAssessment())

	_, cmd := r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	require.NotNil(t, cmd)

	msg := cmd()
	navMsg, ok := msg.(NavigateToPageMsg)
	require.True(t, ok)
	assert.Equal(t, ScenarioBrowserPage, navMsg.Page)
}

func TestResults_Scrolling(t *testing.T) {
	r := NewResults(testResultsAssessment())

	_, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, r.offset)

	_, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, r.offset)

	_, _ = r.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 0, r.offset)
}
