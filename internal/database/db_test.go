package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eivindstn/helsegrad/internal/models"
	"github.com/eivindstn/helsegrad/internal/scoring"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewMemoryDB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testAssessment(name string) *models.Assessment {
	answers := scoring.NewAnswers()
	answers.Set("data_type", "health")
	answers.Set("network_exposure", "internet")
	return models.Build(name, "Helse Sør-Øst", "", answers)
}

func TestMigrate(t *testing.T) {
	db := testDB(t)

	// Migrations are idempotent.
	require.NoError(t, db.Migrate(context.Background()))
}

func TestRecordAndGet(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	a := testAssessment("Journalsystem")

	require.NoError(t, db.RecordAssessment(ctx, a, "/data/"+a.ID+".json"))

	e, err := db.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Journalsystem", e.SystemName)
	assert.Equal(t, a.RecommendedLevel, e.RecommendedLevel)
	assert.Equal(t, "internet", e.Exposure)

	// Re-recording updates in place.
	a.SystemName = "Journalsystem v2"
	require.NoError(t, db.RecordAssessment(ctx, a, "/data/"+a.ID+".json"))

	e, err = db.GetAssessment(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Journalsystem v2", e.SystemName)
}

func TestGetMissing(t *testing.T) {
	db := testDB(t)

	_, err := db.GetAssessment(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestListAssessments(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	first := testAssessment("Eldste")
	second := testAssessment("Nyeste")
	second.CreatedAt = first.CreatedAt.Add(1)

	require.NoError(t, db.RecordAssessment(ctx, first, ""))
	require.NoError(t, db.RecordAssessment(ctx, second, ""))

	entries, err := db.ListAssessments(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Nyeste", entries[0].SystemName)

	entries, err = db.ListAssessments(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestDeleteAssessment(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	a := testAssessment("Journalsystem")

	require.NoError(t, db.RecordAssessment(ctx, a, ""))
	require.NoError(t, db.DeleteAssessment(ctx, a.ID))

	_, err := db.GetAssessment(ctx, a.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
