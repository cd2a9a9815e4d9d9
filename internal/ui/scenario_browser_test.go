package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/catalog"
)

func TestScenarioBrowser_Creation(t *testing.T) {
	sb := NewScenarioBrowser()

	assert.NotNil(t, sb)
	assert.Len(t, sb.scenarios, len(catalog.ThreatScenarios))
	assert.Equal(t, 0, sb.cursor)
	assert.False(t, sb.showDetails)
}

func TestScenarioBrowser_Navigation(t *testing.T) {
	sb := NewScenarioBrowser()

	_, _ = sb.Update(keyRunes("j"))
	assert.Equal(t, 1, sb.cursor)

	_, _ = sb.Update(keyRunes("k"))
	assert.Equal(t, 0, sb.cursor)

	_, _ = sb.Update(keyRunes("G"))
	assert.Equal(t, len(sb.scenarios)-1, sb.cursor)

	_, _ = sb.Update(keyRunes("g"))
	assert.Equal(t, 0, sb.cursor)
}

func TestScenarioBrowser_DetailsToggle(t *testing.T) {
	sb := NewScenarioBrowser()

	_, _ = sb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, sb.showDetails)

	// j/k moves between scenarios while details are open.
	_, _ = sb.Update(keyRunes("j"))
	assert.Equal(t, 1, sb.cursor)
	assert.True(t, sb.showDetails)

	_, _ = sb.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, sb.showDetails)
}

func TestScenarioBrowser_ListView(t *testing.T) {
	sb := NewScenarioBrowser()
	sb.SetSize(120, 40)

	view := sb.View()
	assert.Contains(t, view, "Trusselscenarioer")
	assert.Contains(t, view, sb.scenarios[0].Name)
}

func TestScenarioBrowser_DetailsView(t *testing.T) {
	sb := NewScenarioBrowser()
	sb.SetSize(120, 40)
	sb.showDetails = true

	scenario := sb.scenarios[0]
	view := sb.View()
	require.NotEmpty(t, view)
	assert.Contains(t, view, scenario.Name)
	assert.Contains(t, view, "Sårbarhet")
	assert.Contains(t, view, scenario.Category)
}
