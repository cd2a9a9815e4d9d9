// Package models defines the assessment record shared by storage, reporting,
// and the UI.
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/measures"
	"github.com/eivindstn/helsegrad/internal/risk"
	"github.com/eivindstn/helsegrad/internal/scoring"
)

// Axis is the persisted form of one classification dimension.
type Axis struct {
	Level     int      `json:"level" yaml:"level"`
	Name      string   `json:"name" yaml:"name"`
	ShortName string   `json:"short_name" yaml:"short_name"`
	Reasoning []string `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`
}

// ScenarioRisk is the persisted form of one scored threat scenario.
type ScenarioRisk struct {
	ScenarioID           string            `json:"scenario_id" yaml:"scenario_id"`
	Name                 string            `json:"name" yaml:"name"`
	Category             string            `json:"category" yaml:"category"`
	CIA                  string            `json:"cia" yaml:"cia"`
	Probability          int               `json:"probability" yaml:"probability"`
	Consequence          int               `json:"consequence" yaml:"consequence"`
	Score                int               `json:"score" yaml:"score"`
	Level                catalog.RiskLevel `json:"level" yaml:"level"`
	MitigatedProbability int               `json:"mitigated_probability" yaml:"mitigated_probability"`
	MitigatedConsequence int               `json:"mitigated_consequence" yaml:"mitigated_consequence"`
	MitigatedScore       int               `json:"mitigated_score" yaml:"mitigated_score"`
	MitigatedLevel       catalog.RiskLevel `json:"mitigated_level" yaml:"mitigated_level"`
}

// Assessment is a completed questionnaire with every derived result.
type Assessment struct {
	ID           string    `json:"id" yaml:"id"`
	SystemName   string    `json:"system_name" yaml:"system_name"`
	Organization string    `json:"organization,omitempty" yaml:"organization,omitempty"`
	AssessedBy   string    `json:"assessed_by,omitempty" yaml:"assessed_by,omitempty"`
	CreatedAt    time.Time `json:"created_at" yaml:"created_at"`

	Answers map[string][]string `json:"answers" yaml:"answers"`

	RecommendedLevel int                `json:"recommended_level" yaml:"recommended_level"`
	Confidence       scoring.Confidence `json:"confidence" yaml:"confidence"`
	Flags            []catalog.Flag     `json:"flags,omitempty" yaml:"flags,omitempty"`
	Reasoning        []string           `json:"reasoning,omitempty" yaml:"reasoning,omitempty"`

	InformationClassification Axis `json:"information_classification" yaml:"information_classification"`
	ServiceCriticality        Axis `json:"service_criticality" yaml:"service_criticality"`

	Exposure catalog.Exposure `json:"exposure" yaml:"exposure"`
	Risks    []ScenarioRisk   `json:"risks" yaml:"risks"`
}

// Build runs the scoring and risk engines over a completed answer set.
func Build(systemName, organization, assessedBy string, answers scoring.Answers) *Assessment {
	rec := scoring.CalculateRecommendedLevel(answers)
	dual := scoring.CalculateDualClassification(answers)
	risks := risk.CalculateAssessments(answers, rec.Flags, dual.Exposure)

	a := &Assessment{
		ID:               uuid.New().String(),
		SystemName:       systemName,
		Organization:     organization,
		AssessedBy:       assessedBy,
		CreatedAt:        time.Now().UTC(),
		Answers:          answers.Clone(),
		RecommendedLevel: rec.Level,
		Confidence:       rec.Confidence,
		Flags:            rec.Flags,
		Reasoning:        rec.Reasoning,
		InformationClassification: Axis{
			Level:     dual.InformationClassification.Level,
			Name:      dual.InformationClassification.Name,
			ShortName: dual.InformationClassification.ShortName,
			Reasoning: dual.InformationClassification.Reasoning,
		},
		ServiceCriticality: Axis{
			Level:     dual.ServiceCriticality.Level,
			Name:      dual.ServiceCriticality.Name,
			ShortName: dual.ServiceCriticality.ShortName,
			Reasoning: dual.ServiceCriticality.Reasoning,
		},
		Exposure: dual.Exposure,
		Risks:    make([]ScenarioRisk, 0, len(risks)),
	}

	for _, r := range risks {
		a.Risks = append(a.Risks, ScenarioRisk{
			ScenarioID:           r.Scenario.ID,
			Name:                 r.Scenario.Name,
			Category:             r.Scenario.Category,
			CIA:                  r.Scenario.CIA.Label(),
			Probability:          r.AdjustedProbability,
			Consequence:          r.AdjustedConsequence,
			Score:                r.RiskScore,
			Level:                r.RiskLevel,
			MitigatedProbability: r.MitigatedProbability,
			MitigatedConsequence: r.MitigatedConsequence,
			MitigatedScore:       r.MitigatedRiskScore,
			MitigatedLevel:       r.MitigatedRiskLevel,
		})
	}

	return a
}

// Measures resolves the mandated controls for this assessment.
func (a *Assessment) Measures() measures.Set {
	return measures.ForLevel(a.RecommendedLevel, a.Exposure)
}

// Notifications resolves the reporting duties for this assessment.
func (a *Assessment) Notifications() []catalog.NotificationRequirement {
	return measures.NotificationsForLevel(a.RecommendedLevel)
}

// Notes resolves the sector guidance for this assessment.
func (a *Assessment) Notes() []catalog.ImportantNote {
	return measures.NotesForLevel(a.RecommendedLevel)
}

// RiskCounts tallies scenarios per unmitigated risk level.
func (a *Assessment) RiskCounts() map[catalog.RiskLevel]int {
	counts := make(map[catalog.RiskLevel]int, 4)
	for _, r := range a.Risks {
		counts[r.Level]++
	}
	return counts
}

// Matrix rebuilds the 3x4 risk matrix from the persisted risks.
func (a *Assessment) Matrix() risk.Matrix {
	var m risk.Matrix
	for _, r := range a.Risks {
		row := r.Consequence - 1
		col := r.Probability - 1
		if row >= 0 && row < 3 && col >= 0 && col < 4 {
			m[row][col]++
		}
	}
	return m
}

// GradingName returns the catalog name for the recommended level.
func (a *Assessment) GradingName() string {
	if info, ok := catalog.GradingLevel(a.RecommendedLevel); ok {
		return info.Name
	}
	return ""
}
