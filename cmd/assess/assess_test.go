package assess

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswers(t *testing.T) {
	raw := map[string]any{
		"data_type":        []any{"health", "personal"},
		"patient_data":     "yes",
		"network_exposure": []any{"helsenett"},
	}

	answers, err := ParseAnswers(raw)
	require.NoError(t, err)

	assert.Equal(t, []string{"health", "personal"}, answers.Selected("data_type"))
	assert.Equal(t, []string{"yes"}, answers.Selected("patient_data"))
	assert.Equal(t, 3, answers.AnsweredCount())
}

func TestParseAnswersRejectsUnknownQuestion(t *testing.T) {
	_, err := ParseAnswers(map[string]any{"bogus": "yes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown question")
}

func TestParseAnswersRejectsUnknownOption(t *testing.T) {
	_, err := ParseAnswers(map[string]any{"patient_data": "maybe"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown option")
}

func TestParseAnswersRejectsMultipleForSingleSelect(t *testing.T) {
	_, err := ParseAnswers(map[string]any{"patient_data": []any{"yes", "no"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single answer")
}

func TestLoadAnswersFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.yaml")
	content := `data_type:
  - health
patient_data: pseudonymized
regulatory:
  - normen
  - gdpr
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	answers, err := LoadAnswersFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"normen", "gdpr"}, answers.Selected("regulatory"))
	assert.Equal(t, []string{"pseudonymized"}, answers.Selected("patient_data"))
}
