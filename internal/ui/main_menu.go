package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MainMenu represents the main menu page.
type MainMenu struct {
	choices []string
	cursor  int
	width   int
	height  int
}

// NewMainMenu creates a new main menu.
func NewMainMenu() *MainMenu {
	return &MainMenu{
		choices: []string{
			"Ny vurdering",
			"Tidligere vurderinger",
			"Trusselscenarioer",
			"Avslutt",
		},
		cursor: 0,
	}
}

// Init initializes the main menu.
func (m *MainMenu) Init() tea.Cmd {
	return nil
}

// Update handles main menu updates.
func (m *MainMenu) Update(msg tea.Msg) (*MainMenu, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		// Vim-style navigation
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "j", "down":
			if m.cursor < len(m.choices)-1 {
				m.cursor++
			}
		case "g":
			m.cursor = 0
		case "G":
			m.cursor = len(m.choices) - 1
		case "enter", " ":
			return m, m.handleSelection()
		// Quick keys
		case "n":
			m.cursor = 0
			return m, m.handleSelection()
		case "h":
			m.cursor = 1
			return m, m.handleSelection()
		case "t":
			m.cursor = 2
			return m, m.handleSelection()
		case "q":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the main menu.
func (m *MainMenu) View() string {
	var b strings.Builder

	title := TitleStyle.Render("🏥 Helsegrad - graderingsvurdering for helsesystemer")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	menuStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(m.width)

	for i, choice := range m.choices {
		cursor := "  "
		style := NormalItemStyle

		if m.cursor == i {
			cursor = "▸ "
			style = SelectedItemStyle
		}

		shortcut := ""
		switch i {
		case 0:
			shortcut = "[n] "
		case 1:
			shortcut = "[h] "
		case 2:
			shortcut = "[t] "
		case 3:
			shortcut = "[q] "
		}

		item := fmt.Sprintf("%s%s%s", cursor, shortcut, choice)
		b.WriteString(menuStyle.Render(style.Render(item)))
		b.WriteString("\n")
	}

	b.WriteString("\n\n")
	help := HelpStyle.Render("Naviger: ↑/↓ eller j/k • Velg: Enter • Hurtigtaster: n/h/t/q")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, help))

	content := b.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// SetSize updates the menu dimensions.
func (m *MainMenu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// handleSelection processes menu selections.
func (m *MainMenu) handleSelection() tea.Cmd {
	switch m.cursor {
	case 0:
		return func() tea.Msg {
			return NavigateToPageMsg{Page: WizardPage}
		}
	case 1:
		return func() tea.Msg {
			return NavigateToPageMsg{Page: HistoryPage}
		}
	case 2:
		return func() tea.Msg {
			return NavigateToPageMsg{Page: ScenarioBrowserPage}
		}
	case 3:
		return tea.Quit
	}
	return nil
}
