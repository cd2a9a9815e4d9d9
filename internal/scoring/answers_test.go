package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/catalog"
)

func TestToggleSingleSelect(t *testing.T) {
	q, ok := catalog.QuestionByID("patient_data")
	require.True(t, ok)
	require.False(t, q.MultiSelect)

	a := NewAnswers()
	a.Toggle(q, "anonymized")
	assert.Equal(t, []string{"anonymized"}, a.Selected("patient_data"))

	a.Toggle(q, "yes")
	assert.Equal(t, []string{"yes"}, a.Selected("patient_data"))
}

func TestToggleMultiSelect(t *testing.T) {
	q, ok := catalog.QuestionByID("data_type")
	require.True(t, ok)
	require.True(t, q.MultiSelect)

	a := NewAnswers()
	a.Toggle(q, "internal")
	a.Toggle(q, "health")
	assert.Equal(t, []string{"internal", "health"}, a.Selected("data_type"))

	// Toggling an existing option removes it.
	a.Toggle(q, "internal")
	assert.Equal(t, []string{"health"}, a.Selected("data_type"))

	a.Toggle(q, "health")
	assert.False(t, a.Answered("data_type"))
}

func TestToggleNoneExclusivity(t *testing.T) {
	q, ok := catalog.QuestionByID("regulatory")
	require.True(t, ok)

	a := NewAnswers()
	a.Toggle(q, "gdpr")
	a.Toggle(q, "normen")

	// Selecting "none" clears the other selections.
	a.Toggle(q, "none")
	assert.Equal(t, []string{"none"}, a.Selected("regulatory"))

	// Selecting a real option clears "none".
	a.Toggle(q, "gdpr")
	assert.Equal(t, []string{"gdpr"}, a.Selected("regulatory"))
}

func TestAnsweredCount(t *testing.T) {
	a := NewAnswers()
	assert.Equal(t, 0, a.AnsweredCount())

	a.Set("data_type", "health")
	a.Set("patient_data", "yes")
	assert.Equal(t, 2, a.AnsweredCount())

	a.Set("data_type")
	assert.Equal(t, 1, a.AnsweredCount())
}

func TestClone(t *testing.T) {
	a := NewAnswers()
	a.Set("data_type", "health", "internal")

	b := a.Clone()
	b.Set("data_type", "public")

	assert.Equal(t, []string{"health", "internal"}, a.Selected("data_type"))
	assert.Equal(t, []string{"public"}, b.Selected("data_type"))
}
