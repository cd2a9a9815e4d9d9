package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/scoring"
	"github.com/eivindstn/helsegrad/pkg/logger"
)

func testStorage(t *testing.T) *Storage {
	t.Helper()
	return NewStorageWithLogger(filepath.Join(t.TempDir(), "assessments"), logger.NewMockLogger())
}

func buildAssessment(name string) *models.Assessment {
	answers := scoring.NewAnswers()
	answers.Set("data_type", "health")
	answers.Set("network_exposure", "helsenett")
	return models.Build(name, "Helse Nord", "", answers)
}

func TestSaveAndLoad(t *testing.T) {
	s := testStorage(t)
	a := buildAssessment("Journalsystem")

	path, err := s.Save(a)
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := s.Load(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.SystemName, loaded.SystemName)
	assert.Equal(t, a.RecommendedLevel, loaded.RecommendedLevel)
	assert.Equal(t, a.Exposure, loaded.Exposure)
	assert.Len(t, loaded.Risks, len(a.Risks))
}

func TestLoadMissing(t *testing.T) {
	s := testStorage(t)

	_, err := s.Load("nonexistent")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestList(t *testing.T) {
	s := testStorage(t)

	// Empty directory is not an error.
	assessments, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, assessments)

	first := buildAssessment("Eldste")
	second := buildAssessment("Nyeste")
	second.CreatedAt = first.CreatedAt.Add(1)

	_, err = s.Save(first)
	require.NoError(t, err)
	_, err = s.Save(second)
	require.NoError(t, err)

	assessments, err = s.List()
	require.NoError(t, err)
	require.Len(t, assessments, 2)
	assert.Equal(t, "Nyeste", assessments[0].SystemName)
}

func TestListSkipsCorruptFiles(t *testing.T) {
	s := testStorage(t)
	a := buildAssessment("Journalsystem")
	_, err := s.Save(a)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.BaseDir(), "broken.json"), []byte("{not json"), 0600))

	assessments, err := s.List()
	require.NoError(t, err)
	assert.Len(t, assessments, 1)
}

func TestDelete(t *testing.T) {
	s := testStorage(t)
	a := buildAssessment("Journalsystem")
	_, err := s.Save(a)
	require.NoError(t, err)

	require.NoError(t, s.Delete(a.ID))

	_, err = s.Load(a.ID)
	assert.Error(t, err)
}

func TestExportYAML(t *testing.T) {
	s := testStorage(t)
	a := buildAssessment("Journalsystem")

	path := filepath.Join(t.TempDir(), "export.yaml")
	require.NoError(t, s.ExportYAML(a, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "system_name: Journalsystem")
}
