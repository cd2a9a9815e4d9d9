package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionByID(t *testing.T) {
	q, ok := QuestionByID("data_type")
	require.True(t, ok)
	assert.True(t, q.MultiSelect)

	opt, ok := q.Option("health")
	require.True(t, ok)
	assert.Equal(t, 3, opt.Points)
	assert.Contains(t, opt.Flags, FlagHealthData)

	_, ok = q.Option("does_not_exist")
	assert.False(t, ok)

	_, ok = QuestionByID("does_not_exist")
	assert.False(t, ok)
}

func TestScenarioCatalog(t *testing.T) {
	assert.Len(t, ThreatScenarios, 35)

	seen := make(map[string]bool)
	for _, s := range ThreatScenarios {
		assert.False(t, seen[s.ID], "duplicate scenario ID %s", s.ID)
		seen[s.ID] = true

		assert.GreaterOrEqual(t, s.BaseProbability, 1, "%s probability", s.ID)
		assert.LessOrEqual(t, s.BaseProbability, 4, "%s probability", s.ID)
		assert.GreaterOrEqual(t, s.BaseConsequence, 1, "%s consequence", s.ID)
		assert.LessOrEqual(t, s.BaseConsequence, 3, "%s consequence", s.ID)
		assert.NotEmpty(t, s.Mitigations, "%s mitigations", s.ID)
	}

	s, ok := ScenarioByID("ransomware")
	require.True(t, ok)
	assert.Equal(t, "Ransomware-angrep", s.Name)
	assert.Equal(t, 1.5, s.ExposureMultiplier.Internet)

	_, ok = ScenarioByID("unknown")
	assert.False(t, ok)
}

func TestCIAImpactLabel(t *testing.T) {
	tests := []struct {
		name string
		cia  CIAImpact
		want string
	}{
		{"all", CIAImpact{Confidentiality: true, Integrity: true, Availability: true}, "K, I, T"},
		{"confidentiality only", CIAImpact{Confidentiality: true}, "K"},
		{"availability only", CIAImpact{Availability: true}, "T"},
		{"integrity and availability", CIAImpact{Integrity: true, Availability: true}, "I, T"},
		{"none", CIAImpact{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cia.Label())
		})
	}
}

func TestExposureMultiplierFor(t *testing.T) {
	m := ExposureMultiplier{Internet: 1.5, Helsenett: 1.0, Internal: 0.6}
	assert.Equal(t, 1.5, m.For(ExposureInternet))
	assert.Equal(t, 1.0, m.For(ExposureHelsenett))
	assert.Equal(t, 0.6, m.For(ExposureInternal))
	assert.Equal(t, 0.6, m.For(Exposure("bogus")))
}

func TestRiskLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{1, RiskLow},
		{3, RiskLow},
		{4, RiskMedium},
		{6, RiskMedium},
		{7, RiskHigh},
		{9, RiskHigh},
		{10, RiskCritical},
		{12, RiskCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelForScore(tt.score), "score %d", tt.score)
	}
}

func TestGradingLevel(t *testing.T) {
	info, ok := GradingLevel(3)
	require.True(t, ok)
	assert.Equal(t, "Høy (Funksjons- og virksomhetskritisk)", info.Name)

	_, ok = GradingLevel(0)
	assert.False(t, ok)
	_, ok = GradingLevel(5)
	assert.False(t, ok)
}

func TestMeasureByID(t *testing.T) {
	m, ok := MeasureByID("waf")
	require.True(t, ok)
	assert.Equal(t, MeasureTechnical, m.Category)

	m, ok = MeasureByID("dpia")
	require.True(t, ok)
	assert.Equal(t, MeasureOrganizational, m.Category)

	_, ok = MeasureByID("unknown")
	assert.False(t, ok)
}

func TestNIS2Checklist(t *testing.T) {
	assert.Len(t, NIS2Categories, 8)
	assert.Equal(t, 18, NIS2ItemCount())

	seen := make(map[string]bool)
	for _, cat := range NIS2Categories {
		assert.NotEmpty(t, cat.Name, "category %s", cat.ID)
		assert.NotEmpty(t, cat.Items, "category %s", cat.ID)
		for _, item := range cat.Items {
			assert.False(t, seen[item.ID], "duplicate checklist ID %s", item.ID)
			seen[item.ID] = true

			assert.NotEmpty(t, item.Title, "%s title", item.ID)
			assert.NotEmpty(t, item.Details, "%s details", item.ID)
			assert.NotEmpty(t, item.Article, "%s article", item.ID)
			assert.NotEmpty(t, item.ArticleURL, "%s article URL", item.ID)
		}
	}

	item, ok := NIS2ItemByID("inc-2")
	require.True(t, ok)
	assert.Equal(t, "Varslingsrutiner etablert", item.Title)
	assert.Equal(t, "Art. 23", item.Article)
	assert.Equal(t, "24 timer", item.Deadline)

	_, ok = NIS2ItemByID("unknown")
	assert.False(t, ok)
}
