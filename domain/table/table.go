package table

import (
	"strconv"
	"strings"
)

// Kind describes what a cell holds after coercion.
type Kind int

const (
	KindMissing Kind = iota
	KindNumeric
	KindText
)

// Value is a single coerced cell. Raw preserves the original text so string
// columns (like the texture class) keep their exact spelling even when a value
// also parses as a number.
type Value struct {
	Raw  string
	Num  float64
	Kind Kind
}

// Coerce deterministically converts a raw cell into a typed Value.
// Blank (after trimming) means missing; anything strconv can parse is numeric;
// everything else is text.
func Coerce(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Value{Kind: KindMissing}
	}
	if num, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Value{Raw: trimmed, Num: num, Kind: KindNumeric}
	}
	return Value{Raw: trimmed, Kind: KindText}
}

// IsMissing reports whether the cell holds no value.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Column is a named, ordered list of cells.
type Column struct {
	Name  string
	Cells []Value
}

// Table is an explicit tabular type: ordered named columns sharing a common
// row count, with per-cell null tracking. It replaces the dataframe the
// analysis would otherwise lean on.
type Table struct {
	cols  []Column
	index map[string]int
	rows  int
}

// New creates an empty table with the given header. Duplicate header names
// keep their first position for lookup.
func New(headers []string) *Table {
	t := &Table{
		cols:  make([]Column, len(headers)),
		index: make(map[string]int, len(headers)),
	}
	for i, name := range headers {
		name = strings.TrimSpace(name)
		t.cols[i] = Column{Name: name}
		if _, exists := t.index[name]; !exists {
			t.index[name] = i
		}
	}
	return t
}

// Append adds one record. Short records are padded with missing cells and long
// records are truncated, so columns always share the same row count.
func (t *Table) Append(record []string) {
	for i := range t.cols {
		if i < len(record) {
			t.cols[i].Cells = append(t.cols[i].Cells, Coerce(record[i]))
		} else {
			t.cols[i].Cells = append(t.cols[i].Cells, Value{Kind: KindMissing})
		}
	}
	t.rows++
}

// RowCount returns the number of records appended.
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnNames returns the header in original order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// HasColumn reports whether a column with the exact name exists.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// NumericColumn returns the column as float64 values with a validity mask.
// Text and missing cells are invalid for numeric use.
func (t *Table) NumericColumn(name string) ([]float64, []bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, nil
	}
	vals := make([]float64, t.rows)
	valid := make([]bool, t.rows)
	for i, cell := range t.cols[idx].Cells {
		if cell.Kind == KindNumeric {
			vals[i] = cell.Num
			valid[i] = true
		}
	}
	return vals, valid
}

// StringColumn returns the raw string form of each cell with a presence mask.
// Only missing cells are absent; numeric cells keep their raw text.
func (t *Table) StringColumn(name string) ([]string, []bool) {
	idx, ok := t.index[name]
	if !ok {
		return nil, nil
	}
	vals := make([]string, t.rows)
	present := make([]bool, t.rows)
	for i, cell := range t.cols[idx].Cells {
		if cell.Kind != KindMissing {
			vals[i] = cell.Raw
			present[i] = true
		}
	}
	return vals, present
}
