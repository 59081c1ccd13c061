package features

import "fieldcorr/domain/table"

// Catalog is the fixed, ordered set of measurement columns produced by the
// field analyzer (absolute and relative metrics). Only columns whose names
// match an entry exactly participate in statistics.
var Catalog = []string{
	"Brightness",
	"Mean_R", "Mean_G", "Mean_B",
	"Normalized_Blue",
	"Color_Temp_Proxy",
	"Texture",
	"Relative_Texture_Variance",
	"Edge_Density",
	"Shadow_Intensity",
	"Shadow_Direction_Variance",
	"Relative_Brightness_Variance",
}

// CategoryColumn partitions rows into texture groups for aggregate analysis.
const CategoryColumn = "Texture_Class"

// Present returns the catalog columns that exist in the table, in catalog order.
func Present(t *table.Table) []string {
	var present []string
	for _, name := range Catalog {
		if t.HasColumn(name) {
			present = append(present, name)
		}
	}
	return present
}
