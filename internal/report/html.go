// Package report renders completed assessments as HTML or plain text.
package report

import (
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/measures"
	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/risk"
	"github.com/eivindstn/helsegrad/pkg/logger"
	"github.com/eivindstn/helsegrad/pkg/pathutil"
)

//go:embed templates/*
var templateFS embed.FS

// HTMLGenerator renders one assessment to an HTML file.
type HTMLGenerator struct {
	logger     logger.Logger
	assessment *models.Assessment
}

// NewHTMLGenerator creates a generator using the global logger.
func NewHTMLGenerator(a *models.Assessment) *HTMLGenerator {
	return NewHTMLGeneratorWithLogger(a, logger.GetGlobalLogger())
}

// NewHTMLGeneratorWithLogger creates a generator with a custom logger.
func NewHTMLGeneratorWithLogger(a *models.Assessment, log logger.Logger) *HTMLGenerator {
	return &HTMLGenerator{
		assessment: a,
		logger:     log,
	}
}

// TemplateData holds everything the report template needs.
type TemplateData struct {
	GeneratedAt   time.Time
	Assessment    *models.Assessment
	Grading       catalog.GradingInfo
	Measures      measures.Set
	Notifications []catalog.NotificationRequirement
	Notes         []catalog.ImportantNote
	Legal         []catalog.LegalRequirement
	MatrixRows    []MatrixRow
	RiskLegend    []catalog.RiskLevel
	NIS2          []catalog.ChecklistCategory
}

// MatrixRow is one consequence row of the rendered risk matrix, highest
// consequence first.
type MatrixRow struct {
	Consequence int
	Cells       []MatrixCell
}

// MatrixCell is one probability column within a matrix row.
type MatrixCell struct {
	Probability int
	Count       int
	Level       catalog.RiskLevel
}

// nis2Categories returns the NIS2 checklist for systems where
// Digitalsikkerhetsloven applies, that is level 2 and up.
func nis2Categories(level int) []catalog.ChecklistCategory {
	if level < 2 {
		return nil
	}
	return catalog.NIS2Categories
}

func matrixRows(m risk.Matrix) []MatrixRow {
	rows := make([]MatrixRow, 0, 3)
	for cons := 3; cons >= 1; cons-- {
		row := MatrixRow{Consequence: cons}
		for prob := 1; prob <= 4; prob++ {
			row.Cells = append(row.Cells, MatrixCell{
				Probability: prob,
				Count:       m[cons-1][prob-1],
				Level:       catalog.RiskLevelForScore(prob * cons),
			})
		}
		rows = append(rows, row)
	}
	return rows
}

// Generate writes the report to outputPath.
func (g *HTMLGenerator) Generate(outputPath string) error {
	validOutputPath, err := pathutil.ValidateOutputPath(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	tmpl, err := template.New("report").Funcs(g.templateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return fmt.Errorf("parsing templates: %w", err)
	}

	data := g.prepareTemplateData()

	if err = os.MkdirAll(filepath.Dir(validOutputPath), 0750); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	file, err := os.Create(validOutputPath) //nolint:gosec // Path validated above
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := tmpl.ExecuteTemplate(file, "report.html", data); err != nil {
		return fmt.Errorf("executing template: %w", err)
	}

	g.logger.Info("Generated HTML report", "path", outputPath)
	return nil
}

func (g *HTMLGenerator) prepareTemplateData() TemplateData {
	a := g.assessment
	grading, _ := catalog.GradingLevel(a.RecommendedLevel)

	return TemplateData{
		GeneratedAt:   time.Now(),
		Assessment:    a,
		Grading:       grading,
		Measures:      a.Measures(),
		Notifications: a.Notifications(),
		Notes:         a.Notes(),
		Legal:         catalog.LegalRequirements,
		MatrixRows:    matrixRows(a.Matrix()),
		RiskLegend:    []catalog.RiskLevel{catalog.RiskLow, catalog.RiskMedium, catalog.RiskHigh, catalog.RiskCritical},
		NIS2:          nis2Categories(a.RecommendedLevel),
	}
}

func (g *HTMLGenerator) templateFuncs() template.FuncMap {
	return template.FuncMap{
		"riskClass": func(level catalog.RiskLevel) string {
			return fmt.Sprintf("risk-%s", level)
		},
		"riskLabel": func(level catalog.RiskLevel) string {
			return catalog.RiskLevels[level].Label
		},
		"riskAction": func(level catalog.RiskLevel) string {
			return catalog.RiskLevels[level].Action
		},
		"probLabel": func(p int) string {
			return catalog.ProbabilityLevels[p].Label
		},
		"consLabel": func(c int) string {
			return catalog.ConsequenceLevels[c].Label
		},
		"formatTime": func(t time.Time) string {
			return t.Format("2006-01-02 15:04")
		},
		"title": cases.Title(language.Norwegian).String,
	}
}
