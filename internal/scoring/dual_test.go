package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eivindstn/helsegrad/internal/catalog"
)

func TestDualClassificationEmpty(t *testing.T) {
	result := CalculateDualClassification(NewAnswers())

	assert.Equal(t, 1, result.InformationClassification.Level)
	assert.Equal(t, "Åpen", result.InformationClassification.Name)
	assert.Equal(t, "1. Åpen", result.InformationClassification.ShortName)

	assert.Equal(t, 1, result.ServiceCriticality.Level)
	assert.Equal(t, "Normal", result.ServiceCriticality.Name)

	assert.Equal(t, catalog.ExposureInternal, result.Exposure)
	assert.Equal(t, ConfidenceLow, result.Confidence)
}

func TestDualClassificationHealthDataFloor(t *testing.T) {
	a := NewAnswers()
	a.Set("data_type", "health")

	result := CalculateDualClassification(a)

	assert.Equal(t, 3, result.InformationClassification.Level)
	assert.Equal(t, "Skjermet", result.InformationClassification.Name)
	assert.Equal(t, "Helseopplysninger/pasientdata", result.InformationClassification.Reasoning[0])

	// Health data alone says nothing about criticality.
	assert.Equal(t, 1, result.ServiceCriticality.Level)
}

func TestDualClassificationCriticalSystem(t *testing.T) {
	a := NewAnswers()
	a.Set("infrastructure_impact", "critical")

	result := CalculateDualClassification(a)

	assert.Equal(t, 4, result.ServiceCriticality.Level)
	assert.Equal(t, "Kritisk", result.ServiceCriticality.Name)
	assert.Equal(t, "Kritisk for liv og helse", result.ServiceCriticality.Reasoning[0])
}

func TestDualClassificationDigitalSecurityLaw(t *testing.T) {
	a := NewAnswers()
	a.Set("regulatory", "digitalsikkerhetsloven")

	result := CalculateDualClassification(a)

	// Low criticality points, but the law floors the axis at level 3.
	assert.Equal(t, 3, result.ServiceCriticality.Level)
	assert.Equal(t, "Høy", result.ServiceCriticality.Name)
	assert.Equal(t, "Samfunnsviktig tjeneste (Digitalsikkerhetsloven)", result.ServiceCriticality.Reasoning[0])
}

func TestDualClassificationPointRouting(t *testing.T) {
	a := NewAnswers()
	// user_base routes full points to classification and half to criticality.
	a.Set("user_base", "patients") // class +2, crit +1
	a.Set("regulatory", "gdpr")    // class +2, crit +1

	result := CalculateDualClassification(a)

	// classification 4 points -> level 2, criticality 2 points -> level 1
	assert.Equal(t, 2, result.InformationClassification.Level)
	assert.Equal(t, 1, result.ServiceCriticality.Level)
}

func TestDualClassificationConfidence(t *testing.T) {
	a := NewAnswers()
	a.Set("data_type", "internal")
	a.Set("patient_data", "no")
	a.Set("infrastructure_impact", "minimal")
	a.Set("confidentiality_impact", "minimal")

	result := CalculateDualClassification(a)
	assert.Equal(t, ConfidenceMedium, result.Confidence)

	a.Set("integration", "standalone")
	a.Set("user_base", "internal_limited")

	result = CalculateDualClassification(a)
	assert.Equal(t, ConfidenceHigh, result.Confidence)
}
