package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/models"
)

// Results shows a completed assessment.
type Results struct {
	assessment *models.Assessment
	offset     int
	width      int
	height     int
}

// NewResults creates a results page for an assessment.
func NewResults(a *models.Assessment) *Results {
	return &Results{assessment: a}
}

// Init initializes the results page.
func (r *Results) Init() tea.Cmd {
	r.offset = 0
	return nil
}

// Update handles results page updates.
func (r *Results) Update(msg tea.Msg) (*Results, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if r.offset < len(r.assessment.Risks)-1 {
			r.offset++
		}
	case "k", "up":
		if r.offset > 0 {
			r.offset--
		}
	case "g":
		r.offset = 0
	case "r":
		id := r.assessment.ID
		return r, func() tea.Msg {
			return GenerateReportMsg{ID: id}
		}
	case "t":
		return r, func() tea.Msg {
			return NavigateToPageMsg{Page: ScenarioBrowserPage}
		}
	}
	return r, nil
}

// View renders the assessment results.
func (r *Results) View() string {
	a := r.assessment
	var b strings.Builder

	title := TitleStyle.Render(fmt.Sprintf("Vurdering: %s", a.SystemName))
	b.WriteString(lipgloss.PlaceHorizontal(r.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	levelStyle := lipgloss.NewStyle().Bold(true).Foreground(LevelColor(a.RecommendedLevel))
	name := a.GradingName()
	b.WriteString(fmt.Sprintf("  Anbefalt nivå: %s  %s\n",
		levelStyle.Render(fmt.Sprintf("Nivå %d - %s", a.RecommendedLevel, name)),
		HelpStyle.Render(fmt.Sprintf("(konfidens: %s)", a.Confidence))))
	for _, reason := range a.Reasoning {
		b.WriteString("    • " + reason + "\n")
	}
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("  Informasjonsklassifisering: %s\n", a.InformationClassification.ShortName))
	b.WriteString(fmt.Sprintf("  Tjenestekritikalitet:       %s\n", a.ServiceCriticality.ShortName))
	b.WriteString(fmt.Sprintf("  Eksponering:                %s\n\n", a.Exposure))

	counts := a.RiskCounts()
	b.WriteString("  Risikobilde: ")
	for _, level := range []catalog.RiskLevel{catalog.RiskCritical, catalog.RiskHigh, catalog.RiskMedium, catalog.RiskLow} {
		if n := counts[level]; n > 0 {
			style := lipgloss.NewStyle().Foreground(RiskColor(string(level)))
			b.WriteString(style.Render(fmt.Sprintf("%d %s  ", n, catalog.RiskLevels[level].Label)))
		}
	}
	b.WriteString("\n\n")

	b.WriteString("  Risikoer (sortert etter score):\n")
	visible := a.Risks
	if r.offset < len(visible) {
		visible = visible[r.offset:]
	} else {
		visible = nil
	}
	for i, risk := range visible {
		if i >= 8 {
			break
		}
		style := lipgloss.NewStyle().Foreground(RiskColor(string(risk.Level)))
		b.WriteString(fmt.Sprintf("    %s %s\n",
			style.Render(fmt.Sprintf("[%2d]", risk.Score)), risk.Name))
	}
	b.WriteString("\n")

	set := a.Measures()
	b.WriteString(fmt.Sprintf("  Påkrevde tiltak: %d tekniske, %d organisatoriske\n",
		len(set.Technical), len(set.Organizational)))
	if notifications := a.Notifications(); len(notifications) > 0 {
		b.WriteString(fmt.Sprintf("  Varslingskrav: %d\n", len(notifications)))
	}

	b.WriteString("\n")
	help := HelpStyle.Render("Rapport: r • Scenarioer: t • Tilbake: Esc")
	b.WriteString(lipgloss.PlaceHorizontal(r.width, lipgloss.Center, help))

	return b.String()
}

// SetSize updates the page dimensions.
func (r *Results) SetSize(width, height int) {
	r.width = width
	r.height = height
}
