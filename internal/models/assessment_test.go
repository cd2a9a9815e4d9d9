package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/scoring"
)

func healthSystemAnswers() scoring.Answers {
	a := scoring.NewAnswers()
	a.Set("data_type", "health")
	a.Set("patient_data", "yes")
	a.Set("infrastructure_impact", "significant")
	a.Set("confidentiality_impact", "significant")
	a.Set("integration", "extensive")
	a.Set("user_base", "patients")
	a.Set("regulatory", "normen", "gdpr")
	a.Set("network_exposure", "helsenett")
	return a
}

func TestBuild(t *testing.T) {
	a := Build("Journalsystem", "Helse Vest", "Kari Nordmann", healthSystemAnswers())

	require.NotEmpty(t, a.ID)
	assert.Equal(t, "Journalsystem", a.SystemName)
	assert.False(t, a.CreatedAt.IsZero())

	assert.Equal(t, 3, a.RecommendedLevel)
	assert.Equal(t, scoring.ConfidenceHigh, a.Confidence)
	assert.Contains(t, a.Flags, catalog.FlagHealthData)

	assert.Equal(t, 3, a.InformationClassification.Level)
	assert.Equal(t, "Skjermet", a.InformationClassification.Name)
	assert.Equal(t, catalog.ExposureHelsenett, a.Exposure)

	require.NotEmpty(t, a.Risks)
	for i := 1; i < len(a.Risks); i++ {
		assert.GreaterOrEqual(t, a.Risks[i-1].Score, a.Risks[i].Score)
	}

	// Builds are independent of the caller's answer map.
	answers := healthSystemAnswers()
	b := Build("X", "", "", answers)
	answers.Set("data_type", "public")
	assert.Equal(t, []string{"health"}, b.Answers["data_type"])
}

func TestAssessmentDerived(t *testing.T) {
	a := Build("Journalsystem", "", "", healthSystemAnswers())

	set := a.Measures()
	assert.NotEmpty(t, set.Technical)
	assert.NotEmpty(t, set.Organizational)

	assert.Len(t, a.Notifications(), 5)

	counts := a.RiskCounts()
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.Equal(t, len(a.Risks), total)
	assert.Equal(t, len(a.Risks), a.Matrix().Count())

	assert.Equal(t, "Høy (Funksjons- og virksomhetskritisk)", a.GradingName())
}
