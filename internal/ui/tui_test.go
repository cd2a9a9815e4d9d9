package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/config"
	"github.com/eivindstn/helsegrad/internal/storage"
	"github.com/eivindstn/helsegrad/pkg/logger"
)

func testTUIModel(t *testing.T) *TUIModel {
	t.Helper()
	cfg := config.Default()
	store := storage.NewStorageWithLogger(t.TempDir(), logger.NewMockLogger())
	return NewTUIModel(nil, store, cfg)
}

func TestTUIModel_StartsOnMainMenu(t *testing.T) {
	m := testTUIModel(t)

	assert.Equal(t, MainMenuPage, m.currentPage)
	assert.NotNil(t, m.mainMenu)
}

func TestTUIModel_Navigation(t *testing.T) {
	m := testTUIModel(t)

	model, _ := m.Update(NavigateToPageMsg{Page: WizardPage})
	tm, ok := model.(*TUIModel)
	require.True(t, ok)
	assert.Equal(t, WizardPage, tm.currentPage)
	assert.NotNil(t, tm.wizard)

	// Esc returns to the previous page.
	model, _ = tm.Update(tea.KeyMsg{Type: tea.KeyEsc})
	tm, ok = model.(*TUIModel)
	require.True(t, ok)
	assert.Equal(t, MainMenuPage, tm.currentPage)
}

func TestTUIModel_AssessmentDone(t *testing.T) {
	m := testTUIModel(t)

	a := testResultsAssessment()
	model, cmd := m.Update(AssessmentDoneMsg{Assessment: a})
	tm, ok := model.(*TUIModel)
	require.True(t, ok)

	assert.Equal(t, ResultsPage, tm.currentPage)
	require.NotNil(t, tm.results)
	assert.NotNil(t, cmd)
}

func TestTUIModel_AssessmentLoadFailure(t *testing.T) {
	m := testTUIModel(t)

	model, _ := m.Update(AssessmentLoadedMsg{Err: assert.AnError})
	tm, ok := model.(*TUIModel)
	require.True(t, ok)

	assert.Equal(t, MainMenuPage, tm.currentPage)
	assert.Contains(t, tm.statusMsg, "Kunne ikke laste")
}

func TestTUIModel_ShowMessage(t *testing.T) {
	m := testTUIModel(t)
	m.width = 80

	model, _ := m.Update(ShowMessageMsg{Title: "Lagret", Message: "Vurdering lagret", Type: "success"})
	tm, ok := model.(*TUIModel)
	require.True(t, ok)

	assert.Contains(t, tm.View(), "Vurdering lagret")
}

func TestTUIModel_QuitKeys(t *testing.T) {
	m := testTUIModel(t)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm, ok := model.(*TUIModel)
	require.True(t, ok)

	assert.True(t, tm.quitting)
	require.NotNil(t, cmd)
	assert.Empty(t, tm.View())
}
