package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldcorr/domain/core"
	"fieldcorr/internal"
	"fieldcorr/internal/config"
	"fieldcorr/models"
)

func testConfig(dir string) *config.Config {
	return &config.Config{
		Working: config.WorkingConfig{
			Dir:        dir,
			DataFile:   filepath.Join(dir, "field_data.csv"),
			ReportFile: filepath.Join(dir, "correlations.md"),
			HTMLFile:   filepath.Join(dir, "correlations.html"),
		},
		Server: config.ServerConfig{Port: "8080"},
	}
}

type recordingLedger struct {
	records []models.RunRecord
}

func (l *recordingLedger) Record(ctx context.Context, rec models.RunRecord) error {
	l.records = append(l.records, rec)
	return nil
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	csv := "Brightness,Mean_R,Texture_Class\n10,100,smooth\n20,120,grainy\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "field_data.csv"), []byte(csv), 0o644))

	smallImage := []byte{0xFF, 0xD8, 0x01}
	largeImage := []byte{0xFF, 0xD8, 0x02, 0x03, 0x04, 0x05}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plot1_analyzed.jpg"), smallImage, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plot2_analyzed.jpeg"), largeImage, 0o644))

	ledger := &recordingLedger{}
	svc := NewCorrelatorService(testConfig(dir), internal.NewLogger(internal.LogLevelError), ledger)

	summary, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Rows)
	assert.Equal(t, 2, summary.Features)
	assert.Equal(t, 2, summary.ImagesCopied)

	report, err := os.ReadFile(filepath.Join(dir, "correlations.md"))
	require.NoError(t, err)
	content := string(report)
	assert.Contains(t, content, "# Correlation Report")
	assert.Contains(t, content, "Brightness has very strong positive correlation with Mean_R (r = 1.000).")
	assert.Contains(t, content, "- grainy: Low Confidence (n=1)")
	assert.Contains(t, content, "- smooth: Low Confidence (n=1)")
	assert.Contains(t, content, "| grainy | 20 | 120 |")
	assert.Contains(t, content, "| count | 2 | 2 |")

	html, err := os.ReadFile(filepath.Join(dir, "correlations.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), "<table>")

	got, err := os.ReadFile(filepath.Join(dir, "plot1_correlated.jpg"))
	require.NoError(t, err)
	assert.Equal(t, smallImage, got)
	got, err = os.ReadFile(filepath.Join(dir, "plot2_correlated.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, largeImage, got)

	require.Len(t, ledger.records, 1)
	assert.Equal(t, 2, ledger.records[0].RowCount)
	assert.False(t, core.ID(ledger.records[0].ID).IsEmpty())
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	svc := NewCorrelatorService(testConfig(dir), internal.NewLogger(internal.LogLevelError), nil)

	_, err := svc.Run(context.Background())
	require.Error(t, err)
	assert.True(t, core.IsInputMissing(err))

	_, statErr := os.Stat(filepath.Join(dir, "correlations.md"))
	assert.True(t, os.IsNotExist(statErr), "no report should be written on missing input")
}

func TestRunDegradedDataset(t *testing.T) {
	dir := t.TempDir()
	// One usable feature column and no texture classes: every artifact is
	// absent and the report is all placeholders.
	csv := "Brightness,Comment\n10,first\n20,second\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "field_data.csv"), []byte(csv), 0o644))

	svc := NewCorrelatorService(testConfig(dir), internal.NewLogger(internal.LogLevelError), nil)
	summary, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Features)

	report, err := os.ReadFile(filepath.Join(dir, "correlations.md"))
	require.NoError(t, err)
	content := string(report)
	assert.Contains(t, content, "- Insufficient data for correlations (n < 2 valid rows).")
	assert.Contains(t, content, "_Insufficient valid data for correlation matrix_")
	assert.Contains(t, content, "_No texture groups available_")
	assert.Contains(t, content, "_No texture classification data_")
	// Summary statistics still exist for the one present feature column.
	assert.Contains(t, content, "| count | 2 |")
}

func TestRunIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	csv := "Brightness,Mean_R,Texture_Class\n10,100,smooth\n20,120,grainy\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "field_data.csv"), []byte(csv), 0o644))

	svc := NewCorrelatorService(testConfig(dir), internal.NewLogger(internal.LogLevelError), nil)

	_, err := svc.Run(context.Background())
	require.NoError(t, err)
	first, err := os.ReadFile(filepath.Join(dir, "correlations.md"))
	require.NoError(t, err)

	_, err = svc.Run(context.Background())
	require.NoError(t, err)
	second, err := os.ReadFile(filepath.Join(dir, "correlations.md"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "re-running over unchanged inputs must be byte-identical")
}
