package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eivindstn/helsegrad/internal/catalog"
)

// ScenarioBrowser browses the threat scenario catalog.
type ScenarioBrowser struct {
	scenarios   []catalog.ThreatScenario
	cursor      int
	showDetails bool
	width       int
	height      int
}

// NewScenarioBrowser creates a browser over the full scenario catalog.
func NewScenarioBrowser() *ScenarioBrowser {
	return &ScenarioBrowser{
		scenarios: catalog.ThreatScenarios,
	}
}

// Init initializes the scenario browser.
func (s *ScenarioBrowser) Init() tea.Cmd {
	return nil
}

// Update handles scenario browser updates.
func (s *ScenarioBrowser) Update(msg tea.Msg) (*ScenarioBrowser, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.showDetails {
		switch keyMsg.String() {
		case "enter", "q", "backspace":
			s.showDetails = false
		case "j", "down":
			if s.cursor < len(s.scenarios)-1 {
				s.cursor++
			}
		case "k", "up":
			if s.cursor > 0 {
				s.cursor--
			}
		}
		return s, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if s.cursor < len(s.scenarios)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "g":
		s.cursor = 0
	case "G":
		if len(s.scenarios) > 0 {
			s.cursor = len(s.scenarios) - 1
		}
	case "enter":
		if len(s.scenarios) > 0 {
			s.showDetails = true
		}
	}
	return s, nil
}

// View renders the scenario browser.
func (s *ScenarioBrowser) View() string {
	if s.showDetails {
		return s.viewDetails()
	}
	return s.viewList()
}

func (s *ScenarioBrowser) viewList() string {
	var b strings.Builder

	title := TitleStyle.Render(fmt.Sprintf("Trusselscenarioer (%d)", len(s.scenarios)))
	b.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FFFF"))
	header := fmt.Sprintf("  %s %s %s %s",
		padRight("Scenario", 40), padRight("Kategori", 26), padRight("S×K", 6), "KIT")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n\n")

	// Keep the cursor visible in a fixed window.
	windowSize := 20
	start := 0
	if s.cursor >= windowSize {
		start = s.cursor - windowSize + 1
	}
	end := start + windowSize
	if end > len(s.scenarios) {
		end = len(s.scenarios)
	}

	for i := start; i < end; i++ {
		scenario := s.scenarios[i]
		cursor := "  "
		style := NormalItemStyle
		if s.cursor == i {
			cursor = "▸ "
			style = SelectedItemStyle
		}

		row := fmt.Sprintf("%s%s %s %s %s",
			cursor,
			padRight(scenario.Name, 40),
			padRight(scenario.Category, 26),
			padRight(fmt.Sprintf("%d×%d", scenario.BaseProbability, scenario.BaseConsequence), 6),
			scenario.CIA.Label(),
		)
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := HelpStyle.Render("Naviger: j/k • Detaljer: Enter • Tilbake: Esc")
	b.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, help))

	return b.String()
}

func (s *ScenarioBrowser) viewDetails() string {
	scenario := s.scenarios[s.cursor]
	var b strings.Builder

	title := TitleStyle.Render(scenario.Name)
	b.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Bold(true)
	wrap := lipgloss.NewStyle().Width(max(40, s.width-6)).PaddingLeft(2)

	b.WriteString("  " + labelStyle.Render("Kategori: ") + scenario.Category + "\n")
	b.WriteString("  " + labelStyle.Render("Påvirker: ") + scenario.CIA.Label() + "\n")
	b.WriteString(fmt.Sprintf("  %s%s (%d) × %s (%d)\n\n",
		labelStyle.Render("Utgangspunkt: "),
		catalog.ProbabilityLevels[scenario.BaseProbability].Label, scenario.BaseProbability,
		catalog.ConsequenceLevels[scenario.BaseConsequence].Label, scenario.BaseConsequence))

	b.WriteString("  " + labelStyle.Render("Beskrivelse") + "\n")
	b.WriteString(wrap.Render(scenario.Description) + "\n\n")

	b.WriteString("  " + labelStyle.Render("Sårbarhet") + "\n")
	b.WriteString(wrap.Render(scenario.Vulnerability) + "\n\n")

	b.WriteString("  " + labelStyle.Render("Konsekvens") + "\n")
	b.WriteString(wrap.Render(scenario.Consequence) + "\n\n")

	if scenario.TechnicalDetails != "" {
		b.WriteString("  " + labelStyle.Render("Tekniske detaljer") + "\n")
		b.WriteString(wrap.Render(scenario.TechnicalDetails) + "\n\n")
	}

	if len(scenario.ExistingMeasures) > 0 {
		b.WriteString("  " + labelStyle.Render("Forventede eksisterende tiltak") + "\n")
		for _, m := range scenario.ExistingMeasures {
			b.WriteString("    • " + m + "\n")
		}
		b.WriteString("\n")
	}

	if len(scenario.AdditionalMeasures) > 0 {
		b.WriteString("  " + labelStyle.Render("Anbefalte tilleggstiltak") + "\n")
		for _, m := range scenario.AdditionalMeasures {
			b.WriteString("    • " + m + "\n")
		}
		b.WriteString("\n")
	}

	help := HelpStyle.Render("Neste/forrige: j/k • Liste: Enter • Tilbake: Esc")
	b.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, help))

	return b.String()
}

// SetSize updates the page dimensions.
func (s *ScenarioBrowser) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// padRight pads a string to a fixed display width.
func padRight(str string, length int) string {
	runes := []rune(str)
	if len(runes) >= length {
		return string(runes[:length-1]) + "…"
	}
	return str + strings.Repeat(" ", length-len(runes))
}
