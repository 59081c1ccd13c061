package analysis

import (
	"fmt"
	"math"
)

// Correlation-magnitude thresholds for insight narration.
const (
	strongThreshold     = 0.5
	veryStrongThreshold = 0.7
)

// Insights composes the ordered narrative statements for the report:
// correlation statements first (fixed pairwise scan order), density statements
// after. A nil matrix yields exactly one insufficient-data sentence; pairs
// with |r| <= 0.5 are skipped entirely.
func Insights(corr *CorrelationMatrix, density *Density) []string {
	var insights []string

	if corr == nil {
		insights = append(insights, "Insufficient data for correlations (n < 2 valid rows).")
	} else {
		// Scan in matrix column order; each unordered pair is visited once,
		// with the lexicographically earlier column named first.
		for i, colA := range corr.Columns {
			for j, colB := range corr.Columns {
				if colA >= colB {
					continue
				}
				r := corr.At(i, j)
				var strength string
				switch {
				case math.Abs(r) > veryStrongThreshold:
					strength = "very strong"
				case math.Abs(r) > strongThreshold:
					strength = "strong"
				default:
					continue
				}
				direction := "negative"
				if r > 0 {
					direction = "positive"
				}
				insights = append(insights, fmt.Sprintf(
					"%s has %s %s correlation with %s (r = %.3f).",
					colA, strength, direction, colB, r))
			}
		}
	}

	if !density.Empty() {
		insights = append(insights, "Data density per texture class:")
		for _, class := range density.Classes {
			insights = append(insights, fmt.Sprintf("  - %s", density.Labels[class]))
		}
	} else {
		insights = append(insights, "No texture classification data available.")
	}

	return insights
}
