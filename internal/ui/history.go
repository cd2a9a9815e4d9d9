package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eivindstn/helsegrad/internal/database"
)

// History lists previous assessments from the index database.
type History struct {
	db       *database.DB
	errorMsg string
	entries  []database.Entry
	cursor   int
	width    int
	height   int
	loading  bool
}

// NewHistory creates a new assessment history page.
func NewHistory() *History {
	return &History{
		entries: []database.Entry{},
		cursor:  0,
		loading: false, // Don't load until database is set
	}
}

// LoadEntriesMsg is sent when assessments are loaded from the database.
type LoadEntriesMsg struct {
	Err     error
	Entries []database.Entry
}

// Init initializes the history page.
func (h *History) Init() tea.Cmd {
	if h.db != nil {
		h.loading = true
		return h.loadEntries
	}
	return nil
}

// loadEntries loads assessment history from the database.
func (h *History) loadEntries() tea.Msg {
	if h.db == nil {
		return LoadEntriesMsg{Err: fmt.Errorf("databasen er ikke tilgjengelig")}
	}

	entries, err := h.db.ListAssessments(context.Background(), 100)
	if err != nil {
		return LoadEntriesMsg{Err: fmt.Errorf("loading assessments: %w", err)}
	}
	return LoadEntriesMsg{Entries: entries}
}

// Update handles history page updates.
func (h *History) Update(msg tea.Msg) (*History, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadEntriesMsg:
		h.loading = false
		if msg.Err != nil {
			h.errorMsg = msg.Err.Error()
		} else {
			h.entries = msg.Entries
			if len(h.entries) > 0 && h.cursor >= len(h.entries) {
				h.cursor = len(h.entries) - 1
			}
		}
		return h, nil

	case tea.KeyMsg:
		if h.loading {
			return h, nil // Ignore keys while loading
		}

		switch msg.String() {
		case "j", "down":
			if h.cursor < len(h.entries)-1 {
				h.cursor++
			}
		case "k", "up":
			if h.cursor > 0 {
				h.cursor--
			}
		case "g":
			h.cursor = 0
		case "G":
			if len(h.entries) > 0 {
				h.cursor = len(h.entries) - 1
			}
		case "enter":
			if h.cursor < len(h.entries) {
				id := h.entries[h.cursor].ID
				return h, func() tea.Msg {
					return ViewAssessmentMsg{ID: id}
				}
			}
		case "r":
			if h.cursor < len(h.entries) {
				id := h.entries[h.cursor].ID
				return h, func() tea.Msg {
					return GenerateReportMsg{ID: id}
				}
			}
		case "R":
			h.loading = true
			return h, h.loadEntries
		}
	}
	return h, nil
}

// View renders the assessment history.
func (h *History) View() string {
	var b strings.Builder

	title := TitleStyle.Render("Tidligere vurderinger")
	b.WriteString(lipgloss.PlaceHorizontal(h.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	switch {
	case h.loading:
		b.WriteString(lipgloss.PlaceHorizontal(h.width, lipgloss.Center, "Laster vurderinger..."))
	case h.errorMsg != "":
		b.WriteString(lipgloss.PlaceHorizontal(h.width, lipgloss.Center, ErrorStyle.Render("Feil: "+h.errorMsg)))
	case len(h.entries) == 0:
		b.WriteString(lipgloss.PlaceHorizontal(h.width, lipgloss.Center, "Ingen tidligere vurderinger"))
	default:
		headerStyle := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

		headers := []string{
			padRight("System", 25),
			padRight("Virksomhet", 18),
			padRight("Dato", 18),
			padRight("Nivå", 6),
			padRight("Klasse", 8),
			padRight("Kritisk/Høy", 12),
		}

		b.WriteString("  ")
		b.WriteString(headerStyle.Render(strings.Join(headers, " ")))
		b.WriteString("\n\n")

		for i, entry := range h.entries {
			cursor := "  "
			style := NormalItemStyle
			if h.cursor == i {
				cursor = "▸ "
				style = SelectedItemStyle
			}

			levelStyle := lipgloss.NewStyle().Foreground(LevelColor(entry.RecommendedLevel))
			row := fmt.Sprintf("%s%s %s %s %s %s %s",
				cursor,
				padRight(entry.SystemName, 25),
				padRight(entry.Organization, 18),
				padRight(entry.CreatedAt.Format("2006-01-02 15:04"), 18),
				levelStyle.Render(padRight(fmt.Sprintf("%d", entry.RecommendedLevel), 6)),
				padRight(fmt.Sprintf("K%d/V%d", entry.InfoLevel, entry.CriticalityLevel), 8),
				padRight(fmt.Sprintf("%d/%d", entry.RiskCritical, entry.RiskHigh), 12),
			)

			b.WriteString(style.Render(row))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	help := HelpStyle.Render("Naviger: j/k • Åpne: Enter • Rapport: r • Oppdater: R • Tilbake: Esc")
	b.WriteString(lipgloss.PlaceHorizontal(h.width, lipgloss.Center, help))

	return b.String()
}

// SetSize updates the page dimensions.
func (h *History) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetDatabase sets the database connection.
func (h *History) SetDatabase(db *database.DB) {
	h.db = db
}
