package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eivindstn/helsegrad/internal/catalog"
)

func TestCalculateRecommendedLevelEmpty(t *testing.T) {
	rec := CalculateRecommendedLevel(NewAnswers())

	assert.Equal(t, 1, rec.Level)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.Empty(t, rec.Flags)
	assert.Equal(t, "Systemet behandler ikke sensitiv informasjon", rec.Reasoning[0])
}

func TestCalculateRecommendedLevelSecurityLawOverride(t *testing.T) {
	a := NewAnswers()
	a.Set("regulatory", "security_law")

	rec := CalculateRecommendedLevel(a)

	assert.Equal(t, 4, rec.Level)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.True(t, rec.HasFlag(catalog.FlagSecurityLaw))
	assert.Contains(t, rec.Reasoning[0], "Sikkerhetsloven")
}

func TestCalculateRecommendedLevelHealthData(t *testing.T) {
	a := NewAnswers()
	a.Set("data_type", "health")

	rec := CalculateRecommendedLevel(a)

	assert.Equal(t, 3, rec.Level)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
	assert.True(t, rec.HasFlag(catalog.FlagHealthData))
}

func TestCalculateRecommendedLevelHealthDataHighScore(t *testing.T) {
	a := NewAnswers()
	a.Set("data_type", "health", "personal", "internal") // 6
	a.Set("patient_data", "yes")                         // 3
	a.Set("infrastructure_impact", "critical")           // 3
	a.Set("confidentiality_impact", "severe")            // 3
	a.Set("integration", "critical_hub")                 // 3
	a.Set("regulatory", "normen")                        // 3, total 21

	rec := CalculateRecommendedLevel(a)

	assert.Equal(t, 4, rec.Level)
	assert.Equal(t, ConfidenceHigh, rec.Confidence)
}

func TestCalculateRecommendedLevelPointBuckets(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(Answers)
		wantLevel      int
		wantConfidence Confidence
	}{
		{
			name: "three points stays level 1",
			setup: func(a Answers) {
				a.Set("data_type", "internal")
				a.Set("infrastructure_impact", "moderate")
				a.Set("integration", "limited")
			},
			wantLevel:      1,
			wantConfidence: ConfidenceMedium,
		},
		{
			name: "six points is level 2 with high confidence",
			setup: func(a Answers) {
				a.Set("data_type", "personal")
				a.Set("confidentiality_impact", "significant")
				a.Set("integration", "extensive")
			},
			wantLevel:      2,
			wantConfidence: ConfidenceHigh,
		},
		{
			name: "ten points is level 3",
			setup: func(a Answers) {
				a.Set("data_type", "personal")
				a.Set("confidentiality_impact", "significant")
				a.Set("integration", "extensive")
				a.Set("user_base", "external_partners")
				a.Set("regulatory", "gdpr")
			},
			wantLevel:      3,
			wantConfidence: ConfidenceMedium,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnswers()
			tt.setup(a)
			rec := CalculateRecommendedLevel(a)
			assert.Equal(t, tt.wantLevel, rec.Level)
			assert.Equal(t, tt.wantConfidence, rec.Confidence)
		})
	}
}

func TestCalculateExposure(t *testing.T) {
	tests := []struct {
		name       string
		selections []string
		want       catalog.Exposure
	}{
		{"internet wins over helsenett", []string{"helsenett", "internet"}, catalog.ExposureInternet},
		{"helsenett wins over vpn", []string{"vpn", "helsenett"}, catalog.ExposureHelsenett},
		{"vpn counts as internal", []string{"vpn"}, catalog.ExposureInternal},
		{"unanswered is internal", nil, catalog.ExposureInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAnswers()
			if tt.selections != nil {
				a.Set("network_exposure", tt.selections...)
			}
			assert.Equal(t, tt.want, CalculateExposure(a))
		})
	}
}
