package analysis

import "math"

// CorrelationMatrix is a square Pearson matrix indexed by feature column.
// Symmetric with a unit diagonal; every cell is rounded to 3 decimals.
// A nil matrix means there was not enough clean data to compute one.
type CorrelationMatrix struct {
	Columns []string
	Cells   [][]float64
}

// At returns the coefficient between columns i and j.
func (m *CorrelationMatrix) At(i, j int) float64 {
	return m.Cells[i][j]
}

// GroupedMeans holds per-texture-class mean vectors over the feature columns.
// Classes are sorted; Means values align with Columns. Nil means the category
// column is absent or entirely missing.
type GroupedMeans struct {
	Classes []string
	Columns []string
	Means   map[string][]float64
}

// SummaryRows is the fixed row order of the summary-statistics table.
var SummaryRows = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

// SummaryTable holds describe-style statistics per feature column.
// Values keys follow SummaryRows; each slice aligns with Columns.
type SummaryTable struct {
	Columns []string
	Values  map[string][]float64
}

// Density maps each texture class to its sample-count confidence label.
// Classes iterate by descending count, lexicographic on ties.
type Density struct {
	Classes []string
	Counts  map[string]int
	Labels  map[string]string
}

// Empty reports whether no class was observed.
func (d *Density) Empty() bool {
	return d == nil || len(d.Classes) == 0
}

// round3 applies the uniform 3-decimal rounding used in every report table.
func round3(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*1000) / 1000
}
