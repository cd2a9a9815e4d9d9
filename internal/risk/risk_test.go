package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/scoring"
)

func findAssessment(t *testing.T, assessments []Assessment, id string) Assessment {
	t.Helper()
	for _, a := range assessments {
		if a.Scenario.ID == id {
			return a
		}
	}
	t.Fatalf("scenario %s not in assessments", id)
	return Assessment{}
}

func TestRansomwareInternetHealthData(t *testing.T) {
	answers := scoring.NewAnswers()
	answers.Set("data_type", "health")

	assessments := CalculateAssessments(answers, []catalog.Flag{catalog.FlagHealthData}, catalog.ExposureInternet)
	require.NotEmpty(t, assessments)

	a := findAssessment(t, assessments, "ransomware")

	// 3 * 1.5 * 1.2 = 5.4, rounded and clamped to the 1-4 scale.
	assert.Equal(t, 4, a.AdjustedProbability)
	assert.Equal(t, 3, a.AdjustedConsequence)
	assert.Equal(t, 12, a.RiskScore)
	assert.Equal(t, catalog.RiskCritical, a.RiskLevel)

	assert.Equal(t, 2, a.MitigatedProbability)
	assert.Equal(t, 2, a.MitigatedConsequence)
	assert.Equal(t, 4, a.MitigatedRiskScore)
	assert.Equal(t, catalog.RiskMedium, a.MitigatedRiskLevel)
}

func TestProbabilityClampedAtFloor(t *testing.T) {
	assessments := CalculateAssessments(scoring.NewAnswers(), nil, catalog.ExposureInternal)

	// DDoS is near-irrelevant on an internal network: 3 * 0.1 rounds to 0
	// and must be clamped up.
	a := findAssessment(t, assessments, "ddos")
	assert.Equal(t, 1, a.AdjustedProbability)
}

func TestRelevanceFilter(t *testing.T) {
	assessments := CalculateAssessments(scoring.NewAnswers(), nil, catalog.ExposureInternal)

	ids := make(map[string]bool, len(assessments))
	for _, a := range assessments {
		ids[a.Scenario.ID] = true
	}

	// Scenarios tied to health data or critical systems always apply.
	assert.True(t, ids["ransomware"])
	assert.True(t, ids["epj_compromise"])

	// container_escape requires the critical_infrastructure flag.
	assert.False(t, ids["container_escape"])

	withFlag := CalculateAssessments(scoring.NewAnswers(), []catalog.Flag{catalog.FlagCriticalInfrastructure}, catalog.ExposureInternal)
	found := false
	for _, a := range withFlag {
		if a.Scenario.ID == "container_escape" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestConsequenceAdjustments(t *testing.T) {
	t.Run("significant infrastructure impact bumps consequence", func(t *testing.T) {
		answers := scoring.NewAnswers()
		answers.Set("infrastructure_impact", "significant")

		assessments := CalculateAssessments(answers, nil, catalog.ExposureInternal)
		a := findAssessment(t, assessments, "phishing_targeted")
		assert.Equal(t, 3, a.AdjustedConsequence)
	})

	t.Run("health data floors consequence at 2", func(t *testing.T) {
		answers := scoring.NewAnswers()
		assessments := CalculateAssessments(answers, []catalog.Flag{catalog.FlagHealthData}, catalog.ExposureInternal)
		for _, a := range assessments {
			assert.GreaterOrEqual(t, a.AdjustedConsequence, 2, a.Scenario.ID)
		}
	})

	t.Run("severe confidentiality forces consequence 3", func(t *testing.T) {
		answers := scoring.NewAnswers()
		answers.Set("confidentiality_impact", "severe")

		assessments := CalculateAssessments(answers, nil, catalog.ExposureInternal)
		for _, a := range assessments {
			assert.Equal(t, 3, a.AdjustedConsequence, a.Scenario.ID)
		}
	})
}

func TestAssessmentsSortedByScore(t *testing.T) {
	answers := scoring.NewAnswers()
	answers.Set("data_type", "health")
	answers.Set("infrastructure_impact", "critical")

	assessments := CalculateAssessments(answers, []catalog.Flag{catalog.FlagHealthData, catalog.FlagCriticalSystem}, catalog.ExposureInternet)
	require.NotEmpty(t, assessments)

	for i := 1; i < len(assessments); i++ {
		assert.GreaterOrEqual(t, assessments[i-1].RiskScore, assessments[i].RiskScore)
	}
}

func TestAssessmentsDeterministic(t *testing.T) {
	answers := scoring.NewAnswers()
	answers.Set("data_type", "health")

	first := CalculateAssessments(answers, []catalog.Flag{catalog.FlagHealthData}, catalog.ExposureHelsenett)
	second := CalculateAssessments(answers, []catalog.Flag{catalog.FlagHealthData}, catalog.ExposureHelsenett)
	assert.Equal(t, first, second)
}

func TestMitigatedNeverBelowOne(t *testing.T) {
	assessments := CalculateAssessments(scoring.NewAnswers(), nil, catalog.ExposureInternal)
	for _, a := range assessments {
		assert.GreaterOrEqual(t, a.MitigatedProbability, 1, a.Scenario.ID)
		assert.GreaterOrEqual(t, a.MitigatedConsequence, 1, a.Scenario.ID)
		assert.LessOrEqual(t, a.MitigatedRiskScore, a.RiskScore, a.Scenario.ID)
	}
}

func TestBuildMatrix(t *testing.T) {
	answers := scoring.NewAnswers()
	answers.Set("data_type", "health")

	assessments := CalculateAssessments(answers, []catalog.Flag{catalog.FlagHealthData}, catalog.ExposureInternet)
	m := BuildMatrix(assessments)

	assert.Equal(t, len(assessments), m.Count())
}
