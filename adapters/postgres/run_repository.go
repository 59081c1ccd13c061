package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"fieldcorr/models"
)

// RunRepository persists the correlator run ledger in PostgreSQL.
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// EnsureSchema creates the ledger table if it does not exist
func (r *RunRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS correlator_runs (
			id TEXT PRIMARY KEY,
			row_count INTEGER NOT NULL,
			feature_count INTEGER NOT NULL,
			insight_count INTEGER NOT NULL,
			images_copied INTEGER NOT NULL,
			report_path TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

// Record inserts one ledger row
func (r *RunRepository) Record(ctx context.Context, rec models.RunRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO correlator_runs (id, row_count, feature_count, insight_count, images_copied, report_path, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.ID, rec.RowCount, rec.FeatureCount, rec.InsightCount, rec.ImagesCopied, rec.ReportPath, rec.CreatedAt)
	return err
}

// Recent returns the most recent ledger rows, newest first
func (r *RunRepository) Recent(ctx context.Context, limit int) ([]models.RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	var records []models.RunRecord
	err := r.db.SelectContext(ctx, &records, `
		SELECT id, row_count, feature_count, insight_count, images_copied, report_path, created_at
		FROM correlator_runs
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return records, nil
}
