package analysis

import (
	"gonum.org/v1/gonum/stat"

	"fieldcorr/domain/features"
	"fieldcorr/domain/table"
)

// Correlate computes the Pearson correlation matrix over the catalog feature
// columns present in the table. Rows containing a missing or non-numeric value
// in any candidate column are dropped before the computation. Returns nil when
// fewer than 2 candidate columns or fewer than 2 clean rows remain; malformed
// input never produces an error.
func Correlate(t *table.Table) *CorrelationMatrix {
	columns := features.Present(t)
	if len(columns) < 2 {
		return nil
	}

	clean := cleanFeatureRows(t, columns)
	if len(clean) < 2 {
		return nil
	}

	// Column-major series over the surviving rows
	series := make([][]float64, len(columns))
	for c := range columns {
		series[c] = make([]float64, len(clean))
		for r, row := range clean {
			series[c][r] = row[c]
		}
	}

	cells := make([][]float64, len(columns))
	for i := range columns {
		cells[i] = make([]float64, len(columns))
		cells[i][i] = 1.0
	}
	for i := 0; i < len(columns); i++ {
		for j := i + 1; j < len(columns); j++ {
			r := round3(stat.Correlation(series[i], series[j], nil))
			cells[i][j] = r
			cells[j][i] = r
		}
	}

	return &CorrelationMatrix{Columns: columns, Cells: cells}
}

// cleanFeatureRows returns the rows where every candidate column holds a
// numeric value, as row-major vectors aligned with columns.
func cleanFeatureRows(t *table.Table, columns []string) [][]float64 {
	vals := make([][]float64, len(columns))
	valid := make([][]bool, len(columns))
	for c, name := range columns {
		vals[c], valid[c] = t.NumericColumn(name)
	}

	var clean [][]float64
	for r := 0; r < t.RowCount(); r++ {
		keep := true
		for c := range columns {
			if !valid[c][r] {
				keep = false
				break
			}
		}
		if !keep {
			continue
		}
		row := make([]float64, len(columns))
		for c := range columns {
			row[c] = vals[c][r]
		}
		clean = append(clean, row)
	}
	return clean
}
