package report

import (
	"math"
	"os"
	"strconv"
	"strings"

	"fieldcorr/internal/analysis"
	apperrors "fieldcorr/internal/errors"
)

// Section placeholders rendered when a computed artifact is absent.
const (
	placeholderCorrelation = "_Insufficient valid data for correlation matrix_"
	placeholderGroups      = "_No texture groups available_"
	placeholderStatistics  = "_No statistics available_"
	placeholderDensity     = "_No texture classification data_"
)

// Artifacts bundles everything the statistical core computed for one run.
// Any field may be nil; the renderer substitutes the section placeholder.
type Artifacts struct {
	Correlation *analysis.CorrelationMatrix
	Grouped     *analysis.GroupedMeans
	Summary     *analysis.SummaryTable
	Density     *analysis.Density
	Insights    []string
}

// Render assembles the full markdown report in fixed section order.
func Render(a Artifacts) string {
	var b strings.Builder

	b.WriteString("# Correlation Report\n\n")

	b.WriteString("## Human-Readable Insights\n")
	for _, insight := range a.Insights {
		b.WriteString("- " + insight + "\n")
	}
	b.WriteString("\n")

	b.WriteString("## Correlation Matrix (Selected Features)\n")
	if a.Correlation != nil {
		b.WriteString(correlationTable(a.Correlation) + "\n\n")
	} else {
		b.WriteString(placeholderCorrelation + "\n\n")
	}

	b.WriteString("## Grouped Averages by Texture Class\n")
	if a.Grouped != nil {
		b.WriteString(groupedTable(a.Grouped) + "\n\n")
	} else {
		b.WriteString(placeholderGroups + "\n\n")
	}

	b.WriteString("## Summary Statistics\n")
	if a.Summary != nil {
		b.WriteString(summaryTable(a.Summary) + "\n\n")
	} else {
		b.WriteString(placeholderStatistics + "\n\n")
	}

	b.WriteString("## Data Density & Confidence\n")
	if !a.Density.Empty() {
		for _, class := range a.Density.Classes {
			b.WriteString("- " + class + ": " + a.Density.Labels[class] + "\n")
		}
	} else {
		b.WriteString(placeholderDensity + "\n")
	}

	return b.String()
}

// Write overwrites the report file with the rendered document.
func Write(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return apperrors.ReportError("failed to write report", err)
	}
	return nil
}

func correlationTable(m *analysis.CorrelationMatrix) string {
	rows := make([][]string, 0, len(m.Columns))
	for i, name := range m.Columns {
		row := make([]string, 0, len(m.Columns)+1)
		row = append(row, name)
		for j := range m.Columns {
			row = append(row, formatCell(m.At(i, j)))
		}
		rows = append(rows, row)
	}
	return markdownTable(append([]string{""}, m.Columns...), rows)
}

func groupedTable(g *analysis.GroupedMeans) string {
	rows := make([][]string, 0, len(g.Classes))
	for _, class := range g.Classes {
		row := make([]string, 0, len(g.Columns)+1)
		row = append(row, class)
		for _, v := range g.Means[class] {
			row = append(row, formatCell(v))
		}
		rows = append(rows, row)
	}
	return markdownTable(append([]string{"Texture_Class"}, g.Columns...), rows)
}

func summaryTable(s *analysis.SummaryTable) string {
	rows := make([][]string, 0, len(analysis.SummaryRows))
	for _, stat := range analysis.SummaryRows {
		row := make([]string, 0, len(s.Columns)+1)
		row = append(row, stat)
		for _, v := range s.Values[stat] {
			row = append(row, formatCell(v))
		}
		rows = append(rows, row)
	}
	return markdownTable(append([]string{""}, s.Columns...), rows)
}

// markdownTable renders a header row, a separator row, and one row per entry.
func markdownTable(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString("| " + strings.Join(header, " | ") + " |\n")
	b.WriteString("| " + strings.Join(repeat("---", len(header)), " | ") + " |")
	for _, row := range rows {
		b.WriteString("\n| " + strings.Join(row, " | ") + " |")
	}
	return b.String()
}

// formatCell renders an already-rounded numeric cell in its default form.
func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
