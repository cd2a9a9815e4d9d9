// Package risk scores the threat scenario catalog against a completed
// assessment and produces a prioritized risk picture.
package risk

import (
	"math"
	"sort"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/scoring"
)

// Assessment is one scored scenario, before and after mitigations.
type Assessment struct {
	Scenario *catalog.ThreatScenario

	AdjustedProbability int
	AdjustedConsequence int
	RiskScore           int
	RiskLevel           catalog.RiskLevel

	MitigatedProbability int
	MitigatedConsequence int
	MitigatedRiskScore   int
	MitigatedRiskLevel   catalog.RiskLevel

	ExistingMeasures   []string
	AdditionalMeasures []string
	Mitigations        []string
}

// CalculateAssessments filters the scenario catalog by relevance and scores
// each relevant scenario. Results are sorted by unmitigated risk score,
// highest first; ties keep catalog order.
func CalculateAssessments(answers scoring.Answers, flags []catalog.Flag, exposure catalog.Exposure) []Assessment {
	allFlags := impliedFlags(flags, exposure)

	var assessments []Assessment
	for i := range catalog.ThreatScenarios {
		scenario := &catalog.ThreatScenarios[i]
		if !relevant(scenario, allFlags, exposure) {
			continue
		}

		probability := adjustProbability(scenario, answers, exposure)
		consequence := adjustConsequence(scenario, answers, flags)

		score := probability * consequence
		mitProbability := max(1, probability-scenario.MitigationEffect.ProbabilityReduction)
		mitConsequence := max(1, consequence-scenario.MitigationEffect.ConsequenceReduction)
		mitScore := mitProbability * mitConsequence

		assessments = append(assessments, Assessment{
			Scenario:             scenario,
			AdjustedProbability:  probability,
			AdjustedConsequence:  consequence,
			RiskScore:            score,
			RiskLevel:            catalog.RiskLevelForScore(score),
			MitigatedProbability: mitProbability,
			MitigatedConsequence: mitConsequence,
			MitigatedRiskScore:   mitScore,
			MitigatedRiskLevel:   catalog.RiskLevelForScore(mitScore),
			ExistingMeasures:     scenario.ExistingMeasures,
			AdditionalMeasures:   scenario.AdditionalMeasures,
			Mitigations:          scenario.Mitigations,
		})
	}

	sort.SliceStable(assessments, func(i, j int) bool {
		return assessments[i].RiskScore > assessments[j].RiskScore
	})
	return assessments
}

// impliedFlags broadens the answered flags with what they entail in the
// health sector: identifiable patient data implies health data, and any
// criticality flag implies both criticality flags.
func impliedFlags(flags []catalog.Flag, exposure catalog.Exposure) map[catalog.Flag]bool {
	implied := make(map[catalog.Flag]bool, len(flags)+4)
	for _, f := range flags {
		implied[f] = true
	}

	if implied[catalog.FlagNormenRequired] || implied[catalog.FlagPatientIdentifiable] {
		implied[catalog.FlagHealthData] = true
	}

	switch exposure {
	case catalog.ExposureInternet:
		implied[catalog.FlagInternet] = true
		implied[catalog.FlagPublicFacing] = true
	case catalog.ExposureHelsenett:
		implied[catalog.FlagHelsenett] = true
	}

	if implied[catalog.FlagCriticalSystem] || implied[catalog.FlagCriticalInfrastructure] {
		implied[catalog.FlagCriticalSystem] = true
		implied[catalog.FlagCriticalInfrastructure] = true
	}
	return implied
}

// relevant decides whether a scenario applies. Scenarios without flag
// requirements always apply, as do the health-sector universal ones
// (health_data or critical_system in their flag set).
func relevant(scenario *catalog.ThreatScenario, flags map[catalog.Flag]bool, exposure catalog.Exposure) bool {
	if len(scenario.RelevantFlags) == 0 {
		return true
	}
	for _, f := range scenario.RelevantFlags {
		if flags[f] || string(f) == string(exposure) {
			return true
		}
		if f == catalog.FlagHealthData || f == catalog.FlagCriticalSystem {
			return true
		}
	}
	return false
}

func adjustProbability(scenario *catalog.ThreatScenario, answers scoring.Answers, exposure catalog.Exposure) int {
	probability := float64(scenario.BaseProbability) * scenario.ExposureMultiplier.For(exposure)

	if answers.Includes("data_type", "health") || answers.Includes("data_type", "classified") {
		probability *= 1.2
	}
	if answers.Includes("integration", "critical_hub") || answers.Includes("integration", "extensive") {
		probability *= 1.1
	}
	if answers.Includes("user_base", "public") || answers.Includes("user_base", "patients") {
		probability *= 1.1
	}

	return clamp(int(math.Round(probability)), 1, 4)
}

func adjustConsequence(scenario *catalog.ThreatScenario, answers scoring.Answers, flags []catalog.Flag) int {
	consequence := scenario.BaseConsequence

	if answers.Includes("infrastructure_impact", "critical") {
		consequence = 3
	} else if answers.Includes("infrastructure_impact", "significant") && consequence < 3 {
		consequence++
	}

	if answers.Includes("confidentiality_impact", "severe") || answers.Includes("confidentiality_impact", "national") {
		consequence = 3
	}

	for _, f := range flags {
		if f == catalog.FlagHealthData || f == catalog.FlagPatientIdentifiable {
			consequence = max(consequence, 2)
			break
		}
	}

	return clamp(consequence, 1, 3)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
