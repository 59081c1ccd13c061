package analysis

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"

	"fieldcorr/domain/features"
	"fieldcorr/domain/table"
)

// GroupMeans computes the mean of every present feature column restricted to
// the rows of each texture class. Non-numeric cells are ignored within each
// mean; a class with no numeric cells in a column yields NaN there. Returns
// nil when the category column is absent or holds no value.
func GroupMeans(t *table.Table) *GroupedMeans {
	if !t.HasColumn(features.CategoryColumn) {
		return nil
	}
	classVals, classPresent := t.StringColumn(features.CategoryColumn)

	rowsByClass := make(map[string][]int)
	for r := 0; r < t.RowCount(); r++ {
		if classPresent[r] {
			rowsByClass[classVals[r]] = append(rowsByClass[classVals[r]], r)
		}
	}
	if len(rowsByClass) == 0 {
		return nil
	}

	classes := make([]string, 0, len(rowsByClass))
	for class := range rowsByClass {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	columns := features.Present(t)
	means := make(map[string][]float64, len(classes))
	for _, class := range classes {
		vec := make([]float64, len(columns))
		for c, name := range columns {
			vals, valid := t.NumericColumn(name)
			var sum float64
			var n int
			for _, r := range rowsByClass[class] {
				if valid[r] {
					sum += vals[r]
					n++
				}
			}
			if n == 0 {
				vec[c] = math.NaN()
			} else {
				vec[c] = round3(sum / float64(n))
			}
		}
		means[class] = vec
	}

	return &GroupedMeans{Classes: classes, Columns: columns, Means: means}
}

// Summarize computes describe-style statistics for every present feature
// column over all rows: count, mean, sample standard deviation, min, the
// 25/50/75 percentiles (linear interpolation), and max. Each column is treated
// independently; non-numeric cells only reduce that column's count. Returns
// nil when no catalog column is present.
func Summarize(t *table.Table) *SummaryTable {
	columns := features.Present(t)
	if len(columns) == 0 {
		return nil
	}

	values := make(map[string][]float64, len(SummaryRows))
	for _, row := range SummaryRows {
		values[row] = make([]float64, len(columns))
	}

	for c, name := range columns {
		vals, valid := t.NumericColumn(name)
		var data []float64
		for r := range vals {
			if valid[r] {
				data = append(data, vals[r])
			}
		}

		values["count"][c] = float64(len(data))
		if len(data) == 0 {
			for _, row := range SummaryRows[1:] {
				values[row][c] = math.NaN()
			}
			continue
		}

		mean, _ := stats.Mean(data)
		min, _ := stats.Min(data)
		max, _ := stats.Max(data)

		std := math.NaN()
		if len(data) > 1 {
			std, _ = stats.StandardDeviationSample(data)
		}

		sorted := make([]float64, len(data))
		copy(sorted, data)
		sort.Float64s(sorted)

		values["mean"][c] = round3(mean)
		values["std"][c] = round3(std)
		values["min"][c] = round3(min)
		values["25%"][c] = round3(quantile(sorted, 0.25))
		values["50%"][c] = round3(quantile(sorted, 0.50))
		values["75%"][c] = round3(quantile(sorted, 0.75))
		values["max"][c] = round3(max)
	}

	return &SummaryTable{Columns: columns, Values: values}
}

// quantile linearly interpolates between order statistics of sorted data,
// using position h = (n-1)*p.
func quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
