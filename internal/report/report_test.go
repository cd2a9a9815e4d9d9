package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/scoring"
	"github.com/eivindstn/helsegrad/pkg/logger"
)

func testAssessment(t *testing.T) *models.Assessment {
	t.Helper()
	a := scoring.NewAnswers()
	a.Set("data_type", "health")
	a.Set("patient_data", "yes")
	a.Set("infrastructure_impact", "significant")
	a.Set("confidentiality_impact", "significant")
	a.Set("integration", "extensive")
	a.Set("user_base", "patients")
	a.Set("regulatory", "normen", "gdpr")
	a.Set("network_exposure", "helsenett")
	return models.Build("Journalsystem", "Helse Vest", "Kari Nordmann", a)
}

func TestGenerateHTML(t *testing.T) {
	a := testAssessment(t)
	outPath := filepath.Join(t.TempDir(), "report.html")

	gen := NewHTMLGeneratorWithLogger(a, logger.NewMockLogger())
	require.NoError(t, gen.Generate(outPath))

	content, err := os.ReadFile(outPath) //nolint:gosec // Test temp dir
	require.NoError(t, err)
	html := string(content)

	assert.Contains(t, html, "Journalsystem")
	assert.Contains(t, html, "Helse Vest")
	assert.Contains(t, html, "Skjermet")
	assert.Contains(t, html, "Ransomware-angrep")
	assert.Contains(t, html, "Risikomatrise")
	assert.Contains(t, html, "NIS2 compliance-sjekkliste")
	assert.Contains(t, html, "Varslingsrutiner etablert")
	assert.Contains(t, html, a.ID)
}

func TestNIS2CategoriesByLevel(t *testing.T) {
	assert.Nil(t, nis2Categories(1))
	assert.Len(t, nis2Categories(2), len(catalog.NIS2Categories))
	assert.Len(t, nis2Categories(4), len(catalog.NIS2Categories))
}

func TestGenerateHTMLInvalidPath(t *testing.T) {
	a := testAssessment(t)
	gen := NewHTMLGeneratorWithLogger(a, logger.NewMockLogger())

	err := gen.Generate(filepath.Join(t.TempDir(), "missing", "deep", "report.html"))
	assert.Error(t, err)
}

func TestMatrixRows(t *testing.T) {
	a := testAssessment(t)
	rows := matrixRows(a.Matrix())

	require.Len(t, rows, 3)
	assert.Equal(t, 3, rows[0].Consequence)
	assert.Equal(t, 1, rows[2].Consequence)
	for _, row := range rows {
		require.Len(t, row.Cells, 4)
		assert.Equal(t, 1, row.Cells[0].Probability)
		assert.Equal(t, 4, row.Cells[3].Probability)
	}

	total := 0
	for _, row := range rows {
		for _, cell := range row.Cells {
			total += cell.Count
		}
	}
	assert.Equal(t, len(a.Risks), total)
}

func TestRenderText(t *testing.T) {
	a := testAssessment(t)
	out := RenderText(a)

	assert.Contains(t, out, "GRADERINGSVURDERING: Journalsystem")
	assert.Contains(t, out, "Anbefalt nivå: 3")
	assert.Contains(t, out, "Skjermet")
	assert.Contains(t, out, "PÅKREVDE TILTAK")
	assert.Contains(t, out, "Varslingskrav:")
	assert.Contains(t, out, a.ID)
}
