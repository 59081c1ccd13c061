package models

import (
	"time"

	"fieldcorr/domain/core"
)

// RunRecord is one row of the optional correlator run ledger.
type RunRecord struct {
	ID           core.RunID `db:"id" json:"id"`
	RowCount     int        `db:"row_count" json:"row_count"`
	FeatureCount int        `db:"feature_count" json:"feature_count"`
	InsightCount int        `db:"insight_count" json:"insight_count"`
	ImagesCopied int        `db:"images_copied" json:"images_copied"`
	ReportPath   string     `db:"report_path" json:"report_path"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

// NewRunRecord creates a ledger row for a completed run
func NewRunRecord(rows, features, insights, imagesCopied int, reportPath string) RunRecord {
	return RunRecord{
		ID:           core.NewRunID(),
		RowCount:     rows,
		FeatureCount: features,
		InsightCount: insights,
		ImagesCopied: imagesCopied,
		ReportPath:   reportPath,
		CreatedAt:    time.Now(),
	}
}
