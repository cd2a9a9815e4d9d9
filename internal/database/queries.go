package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eivindstn/helsegrad/internal/catalog"
	"github.com/eivindstn/helsegrad/internal/models"
)

// Entry is one row in the assessment history index.
type Entry struct {
	ID               string
	SystemName       string
	Organization     string
	CreatedAt        time.Time
	RecommendedLevel int
	Confidence       string
	InfoLevel        int
	CriticalityLevel int
	Exposure         string
	RiskCritical     int
	RiskHigh         int
	FilePath         string
}

// RecordAssessment upserts the history row for a saved assessment.
func (db *DB) RecordAssessment(ctx context.Context, a *models.Assessment, filePath string) error {
	counts := a.RiskCounts()

	query := `
	INSERT INTO assessments (
		id, system_name, organization, created_at, recommended_level,
		confidence, info_level, criticality_level, exposure,
		risk_critical, risk_high, file_path
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		system_name = excluded.system_name,
		organization = excluded.organization,
		recommended_level = excluded.recommended_level,
		confidence = excluded.confidence,
		info_level = excluded.info_level,
		criticality_level = excluded.criticality_level,
		exposure = excluded.exposure,
		risk_critical = excluded.risk_critical,
		risk_high = excluded.risk_high,
		file_path = excluded.file_path`

	_, err := db.ExecContext(ctx, query,
		a.ID, a.SystemName, a.Organization, a.CreatedAt, a.RecommendedLevel,
		string(a.Confidence), a.InformationClassification.Level, a.ServiceCriticality.Level,
		string(a.Exposure), counts[catalog.RiskCritical], counts[catalog.RiskHigh], filePath,
	)
	if err != nil {
		return fmt.Errorf("recording assessment %s: %w", a.ID, err)
	}
	return nil
}

// ListAssessments returns history entries, newest first. A limit of 0 means
// no limit.
func (db *DB) ListAssessments(ctx context.Context, limit int) ([]Entry, error) {
	query := `
	SELECT id, system_name, organization, created_at, recommended_level,
		confidence, info_level, criticality_level, exposure,
		risk_critical, risk_high, file_path
	FROM assessments
	ORDER BY created_at DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(
			&e.ID, &e.SystemName, &e.Organization, &e.CreatedAt, &e.RecommendedLevel,
			&e.Confidence, &e.InfoLevel, &e.CriticalityLevel, &e.Exposure,
			&e.RiskCritical, &e.RiskHigh, &e.FilePath,
		); err != nil {
			return nil, fmt.Errorf("scanning assessment row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetAssessment returns the history entry for an ID, or sql.ErrNoRows.
func (db *DB) GetAssessment(ctx context.Context, id string) (*Entry, error) {
	query := `
	SELECT id, system_name, organization, created_at, recommended_level,
		confidence, info_level, criticality_level, exposure,
		risk_critical, risk_high, file_path
	FROM assessments WHERE id = ?`

	var e Entry
	err := db.QueryRowContext(ctx, query, id).Scan(
		&e.ID, &e.SystemName, &e.Organization, &e.CreatedAt, &e.RecommendedLevel,
		&e.Confidence, &e.InfoLevel, &e.CriticalityLevel, &e.Exposure,
		&e.RiskCritical, &e.RiskHigh, &e.FilePath,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("getting assessment %s: %w", id, err)
	}
	return &e, nil
}

// DeleteAssessment removes a history entry.
func (db *DB) DeleteAssessment(ctx context.Context, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM assessments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assessment %s: %w", id, err)
	}
	return nil
}
