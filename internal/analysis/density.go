package analysis

import (
	"fmt"
	"sort"

	"fieldcorr/domain/features"
	"fieldcorr/domain/table"
)

// Confidence-tier boundaries on the per-class sample count.
const (
	mediumConfidenceMin = 5
	highConfidenceMin   = 12
)

// ClassifyDensity counts the non-missing occurrences of each texture class
// and assigns a confidence tier: n < 5 is Low, 5 <= n < 12 is Medium, and
// n >= 12 is High. Missing category values are excluded entirely. Returns nil
// when the category column is absent.
func ClassifyDensity(t *table.Table) *Density {
	if !t.HasColumn(features.CategoryColumn) {
		return nil
	}
	vals, present := t.StringColumn(features.CategoryColumn)

	counts := make(map[string]int)
	for r := range vals {
		if present[r] {
			counts[vals[r]]++
		}
	}

	classes := make([]string, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		if counts[classes[i]] != counts[classes[j]] {
			return counts[classes[i]] > counts[classes[j]]
		}
		return classes[i] < classes[j]
	})

	labels := make(map[string]string, len(counts))
	for class, n := range counts {
		labels[class] = confidenceLabel(n)
	}

	return &Density{Classes: classes, Counts: counts, Labels: labels}
}

func confidenceLabel(n int) string {
	switch {
	case n < mediumConfidenceMin:
		return fmt.Sprintf("Low Confidence (n=%d)", n)
	case n < highConfidenceMin:
		return fmt.Sprintf("Medium Confidence (n=%d)", n)
	default:
		return fmt.Sprintf("High Confidence (n=%d)", n)
	}
}
