package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMainMenu_Creation(t *testing.T) {
	m := NewMainMenu()

	assert.NotNil(t, m)
	assert.Equal(t, 0, m.cursor)
	assert.Len(t, m.choices, 4)
}

func TestMainMenu_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		startPos int
		wantPos  int
	}{
		{"down from top", "j", 0, 1},
		{"down at bottom", "j", 3, 3},
		{"up from middle", "k", 2, 1},
		{"up at top", "k", 0, 0},
		{"go to top", "g", 2, 0},
		{"go to bottom", "G", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMainMenu()
			m.cursor = tt.startPos
			_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			assert.Equal(t, tt.wantPos, m.cursor)
		})
	}
}

func TestMainMenu_Selection(t *testing.T) {
	tests := []struct {
		name     string
		cursor   int
		wantPage Page
	}{
		{"new assessment", 0, WizardPage},
		{"history", 1, HistoryPage},
		{"scenarios", 2, ScenarioBrowserPage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMainMenu()
			m.cursor = tt.cursor

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			require.NotNil(t, cmd)

			msg := cmd()
			navMsg, ok := msg.(NavigateToPageMsg)
			require.True(t, ok)
			assert.Equal(t, tt.wantPage, navMsg.Page)
		})
	}
}

func TestMainMenu_QuickKeys(t *testing.T) {
	m := NewMainMenu()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	require.NotNil(t, cmd)

	msg := cmd()
	navMsg, ok := msg.(NavigateToPageMsg)
	require.True(t, ok)
	assert.Equal(t, HistoryPage, navMsg.Page)
	assert.Equal(t, 1, m.cursor)
}

func TestMainMenu_View(t *testing.T) {
	m := NewMainMenu()
	m.SetSize(80, 24)

	view := m.View()
	assert.Contains(t, view, "Helsegrad")
	assert.Contains(t, view, "Ny vurdering")
	assert.Contains(t, view, "Trusselscenarioer")
}
