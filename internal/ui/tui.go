// Package ui provides the terminal user interface for running assessments.
package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eivindstn/helsegrad/internal/config"
	"github.com/eivindstn/helsegrad/internal/database"
	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/report"
	"github.com/eivindstn/helsegrad/internal/storage"
)

// Page represents different pages in the TUI.
type Page int

const (
	// MainMenuPage is the main menu page.
	MainMenuPage Page = iota
	// WizardPage is the questionnaire page.
	WizardPage
	// ResultsPage shows a completed assessment.
	ResultsPage
	// ScenarioBrowserPage browses the threat scenario catalog.
	ScenarioBrowserPage
	// HistoryPage lists previous assessments.
	HistoryPage
)

// TUI represents the main TUI application.
type TUI struct {
	db    *database.DB
	store *storage.Storage
	cfg   *config.Config
}

// NewTUI creates a new TUI with database and storage connections.
func NewTUI(db *database.DB, store *storage.Storage, cfg *config.Config) *TUI {
	return &TUI{db: db, store: store, cfg: cfg}
}

// Run starts the TUI application.
func (t *TUI) Run() error {
	model := NewTUIModel(t.db, t.store, t.cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// TUIModel represents the main TUI application state.
type TUIModel struct {
	db              *database.DB
	store           *storage.Storage
	cfg             *config.Config
	mainMenu        *MainMenu
	wizard          *Wizard
	results         *Results
	scenarioBrowser *ScenarioBrowser
	history         *History
	statusMsg       string
	pageHistory     []Page
	currentPage     Page
	width           int
	height          int
	quitting        bool
}

// NewTUIModel creates a new TUI application model.
func NewTUIModel(db *database.DB, store *storage.Storage, cfg *config.Config) *TUIModel {
	return &TUIModel{
		db:          db,
		store:       store,
		cfg:         cfg,
		currentPage: MainMenuPage,
		pageHistory: []Page{},
		mainMenu:    NewMainMenu(),
	}
}

// Init initializes the TUI.
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.mainMenu.Init(),
	)
}

// Update handles all TUI updates.
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.mainMenu != nil {
			m.mainMenu.SetSize(msg.Width, msg.Height)
		}
		if m.wizard != nil {
			m.wizard.SetSize(msg.Width, msg.Height)
		}
		if m.results != nil {
			m.results.SetSize(msg.Width, msg.Height)
		}
		if m.scenarioBrowser != nil {
			m.scenarioBrowser.SetSize(msg.Width, msg.Height)
		}
		if m.history != nil {
			m.history.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.statusMsg = ""
			if len(m.pageHistory) > 0 {
				m.currentPage = m.pageHistory[len(m.pageHistory)-1]
				m.pageHistory = m.pageHistory[:len(m.pageHistory)-1]
				return m, nil
			}
		}

	case NavigateToPageMsg:
		m.pageHistory = append(m.pageHistory, m.currentPage)
		m.currentPage = msg.Page
		m.statusMsg = ""

		switch m.currentPage {
		case WizardPage:
			m.wizard = NewWizard(m.cfg.Organization.Name, m.cfg.Organization.AssessedBy)
			m.wizard.SetSize(m.width, m.height)
			return m, m.wizard.Init()
		case ScenarioBrowserPage:
			if m.scenarioBrowser == nil {
				m.scenarioBrowser = NewScenarioBrowser()
				m.scenarioBrowser.SetSize(m.width, m.height)
			}
			return m, m.scenarioBrowser.Init()
		case HistoryPage:
			if m.history == nil {
				m.history = NewHistory()
				m.history.SetDatabase(m.db)
				m.history.SetSize(m.width, m.height)
			}
			return m, m.history.Init()
		case ResultsPage:
			if m.results != nil {
				return m, m.results.Init()
			}
		}

	case AssessmentDoneMsg:
		m.results = NewResults(msg.Assessment)
		m.results.SetSize(m.width, m.height)
		m.pageHistory = append(m.pageHistory, m.currentPage)
		m.currentPage = ResultsPage
		return m, tea.Batch(m.results.Init(), m.saveAssessment(msg.Assessment))

	case ViewAssessmentMsg:
		return m, m.loadAssessment(msg.ID)

	case AssessmentLoadedMsg:
		if msg.Err != nil {
			m.statusMsg = fmt.Sprintf("Kunne ikke laste vurdering: %v", msg.Err)
			return m, nil
		}
		m.results = NewResults(msg.Assessment)
		m.results.SetSize(m.width, m.height)
		m.pageHistory = append(m.pageHistory, m.currentPage)
		m.currentPage = ResultsPage
		return m, m.results.Init()

	case GenerateReportMsg:
		return m, m.generateReport(msg.ID)

	case ShowMessageMsg:
		m.statusMsg = msg.Message
		return m, nil
	}

	// Route updates to current page.
	switch m.currentPage {
	case MainMenuPage:
		if m.mainMenu != nil {
			var cmd tea.Cmd
			m.mainMenu, cmd = m.mainMenu.Update(msg)
			cmds = append(cmds, cmd)
		}
	case WizardPage:
		if m.wizard != nil {
			var cmd tea.Cmd
			m.wizard, cmd = m.wizard.Update(msg)
			cmds = append(cmds, cmd)
		}
	case ResultsPage:
		if m.results != nil {
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			cmds = append(cmds, cmd)
		}
	case ScenarioBrowserPage:
		if m.scenarioBrowser != nil {
			var cmd tea.Cmd
			m.scenarioBrowser, cmd = m.scenarioBrowser.Update(msg)
			cmds = append(cmds, cmd)
		}
	case HistoryPage:
		if m.history != nil {
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the current page.
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	var view string
	switch m.currentPage {
	case MainMenuPage:
		if m.mainMenu != nil {
			view = m.mainMenu.View()
		}
	case WizardPage:
		if m.wizard != nil {
			view = m.wizard.View()
		}
	case ResultsPage:
		if m.results != nil {
			view = m.results.View()
		}
	case ScenarioBrowserPage:
		if m.scenarioBrowser != nil {
			view = m.scenarioBrowser.View()
		}
	case HistoryPage:
		if m.history != nil {
			view = m.history.View()
		}
	}

	if view == "" {
		view = "Laster..."
	}

	if m.statusMsg != "" {
		status := StatusStyle.Render(m.statusMsg)
		view += "\n" + lipgloss.PlaceHorizontal(m.width, lipgloss.Center, status)
	}

	return view
}

// saveAssessment persists a completed assessment to disk and the index.
func (m *TUIModel) saveAssessment(a *models.Assessment) tea.Cmd {
	return func() tea.Msg {
		if m.store == nil {
			return ShowMessageMsg{Title: "Feil", Message: "Lagring er ikke tilgjengelig", Type: "error"}
		}

		path, err := m.store.Save(a)
		if err != nil {
			return ShowMessageMsg{
				Title:   "Feil",
				Message: fmt.Sprintf("Kunne ikke lagre vurderingen: %v", err),
				Type:    "error",
			}
		}

		if m.db != nil {
			if err := m.db.RecordAssessment(context.Background(), a, path); err != nil {
				return ShowMessageMsg{
					Title:   "Feil",
					Message: fmt.Sprintf("Kunne ikke registrere vurderingen: %v", err),
					Type:    "error",
				}
			}
		}

		return ShowMessageMsg{
			Title:   "Lagret",
			Message: fmt.Sprintf("Vurdering lagret: %s", path),
			Type:    "success",
		}
	}
}

// loadAssessment reads a stored assessment back from disk.
func (m *TUIModel) loadAssessment(id string) tea.Cmd {
	return func() tea.Msg {
		if m.store == nil {
			return AssessmentLoadedMsg{Err: fmt.Errorf("lagring er ikke tilgjengelig")}
		}
		a, err := m.store.Load(id)
		if err != nil {
			return AssessmentLoadedMsg{Err: err}
		}
		return AssessmentLoadedMsg{Assessment: a}
	}
}

// generateReport writes an HTML report for a stored assessment.
func (m *TUIModel) generateReport(id string) tea.Cmd {
	return func() tea.Msg {
		if m.store == nil {
			return ShowMessageMsg{Title: "Feil", Message: "Lagring er ikke tilgjengelig", Type: "error"}
		}

		a, err := m.store.Load(id)
		if err != nil {
			return ShowMessageMsg{
				Title:   "Feil",
				Message: fmt.Sprintf("Kunne ikke laste vurderingen: %v", err),
				Type:    "error",
			}
		}

		outputDir := m.cfg.Output.Dir
		if outputDir == "" {
			outputDir = "rapporter"
		}
		if err := os.MkdirAll(outputDir, 0750); err != nil {
			return ShowMessageMsg{
				Title:   "Feil",
				Message: fmt.Sprintf("Kunne ikke opprette rapportkatalogen: %v", err),
				Type:    "error",
			}
		}

		outputFile := filepath.Join(outputDir, fmt.Sprintf("graderingsrapport-%s.html", a.ID))
		gen := report.NewHTMLGenerator(a)
		if err := gen.Generate(outputFile); err != nil {
			return ShowMessageMsg{
				Title:   "Feil",
				Message: fmt.Sprintf("Kunne ikke generere rapporten: %v", err),
				Type:    "error",
			}
		}

		return ShowMessageMsg{
			Title:   "Rapport",
			Message: fmt.Sprintf("Rapport generert: %s", outputFile),
			Type:    "success",
		}
	}
}

// NavigateToPageMsg is sent to navigate to a different page.
type NavigateToPageMsg struct {
	Page Page
}

// AssessmentDoneMsg is sent when the wizard completes a questionnaire.
type AssessmentDoneMsg struct {
	Assessment *models.Assessment
}

// ViewAssessmentMsg is sent to open a stored assessment.
type ViewAssessmentMsg struct {
	ID string
}

// AssessmentLoadedMsg carries a stored assessment read from disk.
type AssessmentLoadedMsg struct {
	Err        error
	Assessment *models.Assessment
}

// GenerateReportMsg is sent to generate an HTML report for an assessment.
type GenerateReportMsg struct {
	ID string
}

// ShowMessageMsg displays a message to the user.
type ShowMessageMsg struct {
	Title   string
	Message string
	Type    string // "success", "error", "info"
}

// Style definitions.
var (
	// Colors for the four risk levels.
	CriticalColor = lipgloss.Color("#FF0000")
	HighColor     = lipgloss.Color("#FFA500")
	MediumColor   = lipgloss.Color("#FFFF00")
	LowColor      = lipgloss.Color("#00FF00")

	BaseStyle = lipgloss.NewStyle().
			Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginBottom(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00FFFF")).
				Bold(true)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080")).
			MarginTop(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000"))
)

// RiskColor returns the display color for a risk level key.
func RiskColor(level string) lipgloss.Color {
	switch level {
	case "critical":
		return CriticalColor
	case "high":
		return HighColor
	case "medium":
		return MediumColor
	default:
		return LowColor
	}
}

// LevelColor returns the display color for a grading level.
func LevelColor(level int) lipgloss.Color {
	switch level {
	case 4:
		return CriticalColor
	case 3:
		return HighColor
	case 2:
		return MediumColor
	default:
		return LowColor
	}
}
