package ui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/database"
)

func createTestEntries(n int) []database.Entry {
	entries := make([]database.Entry, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, database.Entry{
			ID:               fmt.Sprintf("id-%d", i),
			SystemName:       fmt.Sprintf("System %d", i),
			Organization:     "Helse Vest",
			CreatedAt:        time.Now().Add(-time.Duration(i) * time.Hour),
			RecommendedLevel: 2,
			Confidence:       "high",
			InfoLevel:        2,
			CriticalityLevel: 1,
			Exposure:         "helsenett",
		})
	}
	return entries
}

func TestHistory_Creation(t *testing.T) {
	h := NewHistory()

	assert.NotNil(t, h)
	assert.Empty(t, h.entries)
	assert.Equal(t, 0, h.cursor)
	assert.False(t, h.loading)
	assert.Empty(t, h.errorMsg)
}

func TestHistory_LoadEntriesMessage(t *testing.T) {
	h := NewHistory()
	h.loading = true

	entries := createTestEntries(2)
	_, cmd := h.Update(LoadEntriesMsg{Entries: entries})
	assert.Nil(t, cmd)
	assert.False(t, h.loading)
	assert.Empty(t, h.errorMsg)
	assert.Equal(t, entries, h.entries)

	h.loading = true
	_, cmd = h.Update(LoadEntriesMsg{Err: assert.AnError})
	assert.Nil(t, cmd)
	assert.False(t, h.loading)
	assert.Contains(t, h.errorMsg, "assert.AnError")
}

func TestHistory_Navigation(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		startPos int
		wantPos  int
	}{
		{"down from top", "j", 0, 1},
		{"down at bottom", "j", 4, 4},
		{"up from middle", "k", 2, 1},
		{"up at top", "k", 0, 0},
		{"go to top", "g", 3, 0},
		{"go to bottom", "G", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory()
			h.entries = createTestEntries(5)
			h.cursor = tt.startPos
			_, _ = h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			assert.Equal(t, tt.wantPos, h.cursor)
		})
	}
}

func TestHistory_NavigationWhileLoading(t *testing.T) {
	h := NewHistory()
	h.loading = true
	h.entries = createTestEntries(3)
	initialCursor := h.cursor

	keys := []string{"j", "k", "g", "G", "enter"}
	for _, key := range keys {
		_, _ = h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
		assert.Equal(t, initialCursor, h.cursor)
	}
}

func TestHistory_EnterOpensAssessment(t *testing.T) {
	h := NewHistory()
	h.entries = createTestEntries(3)
	h.cursor = 1

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	viewMsg, ok := msg.(ViewAssessmentMsg)
	require.True(t, ok)
	assert.Equal(t, "id-1", viewMsg.ID)
}

func TestHistory_ReportKey(t *testing.T) {
	h := NewHistory()
	h.entries = createTestEntries(2)
	h.cursor = 0

	_, cmd := h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)

	msg := cmd()
	reportMsg, ok := msg.(GenerateReportMsg)
	require.True(t, ok)
	assert.Equal(t, "id-0", reportMsg.ID)
}

func TestHistory_View(t *testing.T) {
	h := NewHistory()
	h.SetSize(120, 40)

	view := h.View()
	assert.Contains(t, view, "Ingen tidligere vurderinger")

	h.entries = createTestEntries(2)
	view = h.View()
	assert.Contains(t, view, "System 0")
	assert.Contains(t, view, "Helse Vest")
}
