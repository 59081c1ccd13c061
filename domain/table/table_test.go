package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind Kind
		num  float64
	}{
		{"integer", "42", KindNumeric, 42},
		{"float", "3.14", KindNumeric, 3.14},
		{"negative", "-0.5", KindNumeric, -0.5},
		{"scientific", "1e3", KindNumeric, 1000},
		{"padded numeric", "  7 ", KindNumeric, 7},
		{"text", "smooth", KindText, 0},
		{"empty", "", KindMissing, 0},
		{"whitespace only", "   ", KindMissing, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Coerce(tt.raw)
			assert.Equal(t, tt.kind, v.Kind)
			if tt.kind == KindNumeric {
				assert.Equal(t, tt.num, v.Num)
			}
		})
	}
}

func TestTableColumns(t *testing.T) {
	tbl := New([]string{"Brightness", "Texture_Class"})
	tbl.Append([]string{"10", "smooth"})
	tbl.Append([]string{"bad", "grainy"})
	tbl.Append([]string{"30", ""})

	require.Equal(t, 3, tbl.RowCount())
	assert.Equal(t, []string{"Brightness", "Texture_Class"}, tbl.ColumnNames())
	assert.True(t, tbl.HasColumn("Brightness"))
	assert.False(t, tbl.HasColumn("brightness")) // matching is case-sensitive

	vals, valid := tbl.NumericColumn("Brightness")
	assert.Equal(t, []float64{10, 0, 30}, vals)
	assert.Equal(t, []bool{true, false, true}, valid)

	strs, present := tbl.StringColumn("Texture_Class")
	assert.Equal(t, []string{"smooth", "grainy", ""}, strs)
	assert.Equal(t, []bool{true, true, false}, present)
}

func TestTableRaggedRecords(t *testing.T) {
	tbl := New([]string{"A", "B"})
	tbl.Append([]string{"1"})           // short: B becomes missing
	tbl.Append([]string{"2", "3", "4"}) // long: extra cell dropped

	require.Equal(t, 2, tbl.RowCount())
	_, valid := tbl.NumericColumn("B")
	assert.Equal(t, []bool{false, true}, valid)
}

func TestNumericColumnKeepsRawString(t *testing.T) {
	tbl := New([]string{"Texture_Class"})
	tbl.Append([]string{"12"})

	// A numeric-looking class value still groups by its text form.
	strs, present := tbl.StringColumn("Texture_Class")
	require.True(t, present[0])
	assert.Equal(t, "12", strs[0])
}

func TestUnknownColumn(t *testing.T) {
	tbl := New([]string{"A"})
	vals, valid := tbl.NumericColumn("Missing")
	assert.Nil(t, vals)
	assert.Nil(t, valid)
}
