// Package dataset holds the tabular container for uploaded data files
// and its parsing and analysis helpers. A table is plain rows of
// string cells under named columns; an empty cell is a missing value.
package dataset

import (
	"strconv"

	"github.com/dparker/statlab/internal/stats"
)

// Table is a parsed tabular dataset.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	return t.columnIndex(name) >= 0
}

func (t *Table) columnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// cell returns the value at (row, col index), tolerating ragged rows.
func (t *Table) cell(row, idx int) string {
	if idx >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][idx]
}

// NumericColumn parses the named column as floats, skipping missing
// cells. ok is false when the column does not exist, contains a
// non-numeric cell, or has no values at all.
func (t *Table) NumericColumn(name string) (values []float64, ok bool) {
	idx := t.columnIndex(name)
	if idx < 0 {
		return nil, false
	}
	for row := range t.Rows {
		cell := t.cell(row, idx)
		if cell == "" {
			continue
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, len(values) > 0
}

// NumericColumns returns the names of all numeric columns, in table
// order.
func (t *Table) NumericColumns() []string {
	var cols []string
	for _, c := range t.Columns {
		if _, ok := t.NumericColumn(c); ok {
			cols = append(cols, c)
		}
	}
	return cols
}

// MissingColumns returns the names of columns with at least one
// missing cell, in table order.
func (t *Table) MissingColumns() []string {
	var cols []string
	for i, c := range t.Columns {
		for row := range t.Rows {
			if t.cell(row, i) == "" {
				cols = append(cols, c)
				break
			}
		}
	}
	return cols
}

// Analysis summarizes a table the way the upload page reports it:
// shape, column types, missing and unique counts, and a descriptive
// statistics report per numeric column.
type Analysis struct {
	Rows    int                     `json:"rows"`
	Columns []string                `json:"columns"`
	Types   map[string]string       `json:"types"`
	Missing map[string]int          `json:"missing"`
	Unique  map[string]int          `json:"unique"`
	Stats   map[string]stats.Report `json:"stats"`
}

// Analyze computes the per-column summary of t.
func Analyze(t *Table) *Analysis {
	a := &Analysis{
		Rows:    t.NumRows(),
		Columns: t.Columns,
		Types:   make(map[string]string, len(t.Columns)),
		Missing: make(map[string]int, len(t.Columns)),
		Unique:  make(map[string]int, len(t.Columns)),
		Stats:   make(map[string]stats.Report),
	}

	for i, col := range t.Columns {
		seen := make(map[string]struct{})
		missing := 0
		for row := range t.Rows {
			cell := t.cell(row, i)
			if cell == "" {
				missing++
				continue
			}
			seen[cell] = struct{}{}
		}
		a.Missing[col] = missing
		a.Unique[col] = len(seen)

		if values, ok := t.NumericColumn(col); ok {
			a.Types[col] = "numeric"
			a.Stats[col] = stats.Full(values)
		} else {
			a.Types[col] = "text"
		}
	}
	return a
}
