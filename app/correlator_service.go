package app

import (
	"context"
	"os"

	"fieldcorr/adapters/images"
	"fieldcorr/adapters/ingest"
	"fieldcorr/domain/features"
	"fieldcorr/internal"
	"fieldcorr/internal/analysis"
	"fieldcorr/internal/config"
	apperrors "fieldcorr/internal/errors"
	"fieldcorr/internal/report"
	"fieldcorr/models"
)

// RunLedger records completed runs. Nil disables persistence.
type RunLedger interface {
	Record(ctx context.Context, rec models.RunRecord) error
}

// CorrelatorService orchestrates one correlator run: ingest the dataset,
// compute the statistical artifacts, render the report, duplicate the
// analyzed images, and optionally record a ledger row.
type CorrelatorService struct {
	cfg    *config.Config
	log    *internal.Logger
	ledger RunLedger
}

// NewCorrelatorService creates the service. ledger may be nil.
func NewCorrelatorService(cfg *config.Config, logger *internal.Logger, ledger RunLedger) *CorrelatorService {
	return &CorrelatorService{cfg: cfg, log: logger, ledger: ledger}
}

// RunSummary describes what a run produced.
type RunSummary struct {
	Rows         int    `json:"rows"`
	Features     int    `json:"features"`
	Insights     int    `json:"insights"`
	ImagesCopied int    `json:"images_copied"`
	ReportPath   string `json:"report_path"`
}

// Run executes the full pipeline once. A missing dataset file surfaces as
// core.ErrInputMissing with no report written; data-quality problems inside
// the dataset degrade to placeholder sections instead of failing.
func (s *CorrelatorService) Run(ctx context.Context) (*RunSummary, error) {
	if err := os.MkdirAll(s.cfg.Working.Dir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, "failed to prepare working directory")
	}

	tbl, err := ingest.NewReader(s.cfg.Working.DataFile).Read()
	if err != nil {
		return nil, err
	}
	s.log.Info("[Correlator] loaded %d rows from %s", tbl.RowCount(), s.cfg.Working.DataFile)

	corr := analysis.Correlate(tbl)
	grouped := analysis.GroupMeans(tbl)
	summary := analysis.Summarize(tbl)
	density := analysis.ClassifyDensity(tbl)
	insights := analysis.Insights(corr, density)

	rendered := report.Render(report.Artifacts{
		Correlation: corr,
		Grouped:     grouped,
		Summary:     summary,
		Density:     density,
		Insights:    insights,
	})
	if err := report.Write(s.cfg.Working.ReportFile, rendered); err != nil {
		return nil, err
	}
	s.log.Info("[Correlator] report generated at %s", s.cfg.Working.ReportFile)

	if err := report.Write(s.cfg.Working.HTMLFile, string(report.ToHTML(rendered))); err != nil {
		return nil, err
	}

	copied, err := images.NewDuplicator(s.cfg.Working.Dir, s.log).Run()
	if err != nil {
		// The report already exists at this point; image traceability is
		// ancillary, so a scan failure does not fail the run.
		s.log.Warn("[Correlator] image duplication skipped: %v", err)
	} else {
		s.log.Info("[Correlator] correlated images created (%d)", copied)
	}

	summaryOut := &RunSummary{
		Rows:         tbl.RowCount(),
		Features:     len(features.Present(tbl)),
		Insights:     len(insights),
		ImagesCopied: copied,
		ReportPath:   s.cfg.Working.ReportFile,
	}

	if s.ledger != nil {
		rec := models.NewRunRecord(summaryOut.Rows, summaryOut.Features, summaryOut.Insights, summaryOut.ImagesCopied, summaryOut.ReportPath)
		if err := s.ledger.Record(ctx, rec); err != nil {
			s.log.Warn("[Correlator] failed to record run ledger row: %v", err)
		}
	}

	return summaryOut, nil
}
