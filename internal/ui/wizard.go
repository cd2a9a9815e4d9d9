package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/scoring"
)

// Wizard steps through the grading questionnaire one question at a time.
type Wizard struct {
	answers      scoring.Answers
	questions    []catalog.Question
	systemName   string
	organization string
	assessedBy   string
	step         int // 0 = name entry, 1..len(questions) = questions, len+1 = confirm
	cursor       int
	width        int
	height       int
}

// NewWizard creates a questionnaire wizard with organization defaults.
func NewWizard(organization, assessedBy string) *Wizard {
	return &Wizard{
		answers:      scoring.NewAnswers(),
		questions:    catalog.AllQuestions(),
		organization: organization,
		assessedBy:   assessedBy,
		step:         0,
		cursor:       0,
	}
}

// Init initializes the wizard.
func (w *Wizard) Init() tea.Cmd {
	return nil
}

// Answers returns the current answer set.
func (w *Wizard) Answers() scoring.Answers {
	return w.answers
}

func (w *Wizard) confirmStep() int {
	return len(w.questions) + 1
}

func (w *Wizard) currentQuestion() *catalog.Question {
	if w.step < 1 || w.step > len(w.questions) {
		return nil
	}
	return &w.questions[w.step-1]
}

// Update handles wizard updates.
func (w *Wizard) Update(msg tea.Msg) (*Wizard, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	if w.step == 0 {
		return w.updateNameEntry(keyMsg)
	}
	if w.step == w.confirmStep() {
		return w.updateConfirm(keyMsg)
	}
	return w.updateQuestion(keyMsg)
}

func (w *Wizard) updateNameEntry(msg tea.KeyMsg) (*Wizard, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if strings.TrimSpace(w.systemName) != "" {
			w.step = 1
			w.cursor = 0
		}
	case "backspace":
		if w.systemName != "" {
			runes := []rune(w.systemName)
			w.systemName = string(runes[:len(runes)-1])
		}
	default:
		if msg.Type == tea.KeyRunes {
			w.systemName += string(msg.Runes)
		} else if msg.Type == tea.KeySpace {
			w.systemName += " "
		}
	}
	return w, nil
}

func (w *Wizard) updateQuestion(msg tea.KeyMsg) (*Wizard, tea.Cmd) {
	q := w.currentQuestion()
	if q == nil {
		return w, nil
	}

	switch msg.String() {
	case "k", "up":
		if w.cursor > 0 {
			w.cursor--
		}
	case "j", "down":
		if w.cursor < len(q.Options)-1 {
			w.cursor++
		}
	case " ":
		option := q.Options[w.cursor]
		if q.MultiSelect {
			w.answers.Toggle(q, option.ID)
		} else {
			w.answers.Set(q.ID, option.ID)
		}
	case "enter":
		if q.MultiSelect {
			// Advance with whatever is toggled, skipping is allowed.
			w.advance()
		} else {
			w.answers.Set(q.ID, q.Options[w.cursor].ID)
			w.advance()
		}
	case "s":
		// Skip without answering.
		w.advance()
	case "p", "left":
		if w.step > 1 {
			w.step--
			w.cursor = 0
		}
	}
	return w, nil
}

func (w *Wizard) updateConfirm(msg tea.KeyMsg) (*Wizard, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a := models.Build(w.systemName, w.organization, w.assessedBy, w.answers)
		return w, func() tea.Msg {
			return AssessmentDoneMsg{Assessment: a}
		}
	case "p", "left":
		w.step = len(w.questions)
		w.cursor = 0
	}
	return w, nil
}

func (w *Wizard) advance() {
	w.step++
	w.cursor = 0
}

// View renders the wizard.
func (w *Wizard) View() string {
	if w.step == 0 {
		return w.viewNameEntry()
	}
	if w.step == w.confirmStep() {
		return w.viewConfirm()
	}
	return w.viewQuestion()
}

func (w *Wizard) viewNameEntry() string {
	var b strings.Builder

	title := TitleStyle.Render("Ny graderingsvurdering")
	b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	prompt := fmt.Sprintf("Navn på systemet som skal vurderes:\n\n  ▸ %s█", w.systemName)
	b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, prompt))

	if w.organization != "" {
		b.WriteString("\n\n")
		org := HelpStyle.Render("Virksomhet: " + w.organization)
		b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, org))
	}

	b.WriteString("\n\n")
	help := HelpStyle.Render("Fortsett: Enter • Avbryt: Esc")
	b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, help))

	return lipgloss.Place(w.width, w.height, lipgloss.Center, lipgloss.Center, b.String())
}

func (w *Wizard) viewQuestion() string {
	q := w.currentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	title := TitleStyle.Render(fmt.Sprintf("Spørsmål %d av %d", w.step, len(w.questions)))
	b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().Bold(true)
	b.WriteString("  " + questionStyle.Render(q.Question) + "\n")
	if q.Description != "" {
		b.WriteString("  " + HelpStyle.Render(q.Description) + "\n")
	}
	b.WriteString("\n")

	for i, option := range q.Options {
		cursor := "  "
		style := NormalItemStyle
		if w.cursor == i {
			cursor = "▸ "
			style = SelectedItemStyle
		}

		marker := "( )"
		if q.MultiSelect {
			marker = "[ ]"
			if w.answers.Includes(q.ID, option.ID) {
				marker = "[x]"
			}
		} else if w.answers.Includes(q.ID, option.ID) {
			marker = "(•)"
		}

		b.WriteString("  " + style.Render(fmt.Sprintf("%s%s %s", cursor, marker, option.Label)))
		b.WriteString("\n")
		if w.cursor == i && option.Description != "" {
			b.WriteString("        " + HelpStyle.Render(option.Description) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString("  " + w.previewLine() + "\n")

	b.WriteString("\n")
	var help string
	if q.MultiSelect {
		help = HelpStyle.Render("Velg: Mellomrom • Neste: Enter • Hopp over: s • Forrige: p • Avbryt: Esc")
	} else {
		help = HelpStyle.Render("Velg og gå videre: Enter • Hopp over: s • Forrige: p • Avbryt: Esc")
	}
	b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, help))

	return b.String()
}

// previewLine shows the running recommendation while answering.
func (w *Wizard) previewLine() string {
	if w.answers.AnsweredCount() == 0 {
		return HelpStyle.Render("Foreløpig vurdering: besvar spørsmål for å se nivå")
	}

	rec := scoring.CalculateRecommendedLevel(w.answers)
	levelStyle := lipgloss.NewStyle().Bold(true).Foreground(LevelColor(rec.Level))
	name := ""
	if info, ok := catalog.GradingLevel(rec.Level); ok {
		name = info.Name
	}
	return fmt.Sprintf("Foreløpig vurdering: %s %s",
		levelStyle.Render(fmt.Sprintf("Nivå %d (%s)", rec.Level, name)),
		HelpStyle.Render(fmt.Sprintf("konfidens: %s", rec.Confidence)))
}

func (w *Wizard) viewConfirm() string {
	var b strings.Builder

	title := TitleStyle.Render("Oppsummering")
	b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("  System: %s\n", w.systemName))
	b.WriteString(fmt.Sprintf("  Besvarte spørsmål: %d av %d\n\n", w.answers.AnsweredCount(), len(w.questions)))

	for _, q := range w.questions {
		selected := w.answers.Selected(q.ID)
		if len(selected) == 0 {
			b.WriteString(fmt.Sprintf("  %s %s\n", HelpStyle.Render("ubesvart"), q.Question))
			continue
		}
		labels := make([]string, 0, len(selected))
		for _, id := range selected {
			if option, ok := q.Option(id); ok {
				labels = append(labels, option.Label)
			}
		}
		b.WriteString(fmt.Sprintf("  • %s: %s\n", q.Question, strings.Join(labels, ", ")))
	}

	b.WriteString("\n")
	b.WriteString("  " + w.previewLine() + "\n\n")

	help := HelpStyle.Render("Fullfør vurderingen: Enter • Tilbake: p • Avbryt: Esc")
	b.WriteString(lipgloss.PlaceHorizontal(w.width, lipgloss.Center, help))

	return b.String()
}

// SetSize updates the page dimensions.
func (w *Wizard) SetSize(width, height int) {
	w.width = width
	w.height = height
}
