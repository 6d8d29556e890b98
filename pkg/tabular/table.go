// Package tabular provides an in-memory table model for CSV data.
//
// A Table holds an ordered header and string-valued rows. Cells are plain
// strings; a cell in a column the table does not have reads as the empty
// string. Tables are not safe for concurrent use.
package tabular

import (
	"github.com/agentstation/offboard/pkg/errors"
)

// Table is an ordered set of columns with string-valued rows.
type Table struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]string
}

// New creates an empty table with the given name and columns. The name
// identifies the table in errors and logs. When a column name repeats,
// the first occurrence wins for lookups.
func New(name string, columns []string) *Table {
	cols := make([]string, len(columns))
	copy(cols, columns)

	index := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, ok := index[c]; !ok {
			index[c] = i
		}
	}

	return &Table{
		name:    name,
		columns: cols,
		index:   index,
	}
}

// Name returns the table's name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns a copy of the column names in order.
func (t *Table) Columns() []string {
	cols := make([]string, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Append adds a copy of row, padded or truncated to the column count.
func (t *Table) Append(row []string) {
	cells := make([]string, len(t.columns))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Row returns the backing slice for row i. Callers may rewrite cells in
// place but must not grow the slice.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

// Index returns the position of the named column and whether it exists.
func (t *Table) Index(column string) (int, bool) {
	i, ok := t.index[column]
	return i, ok
}

// HasColumn reports whether the table has the named column.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Cell returns the value at row i of the named column, or the empty string
// when the column does not exist.
func (t *Table) Cell(i int, column string) string {
	idx, ok := t.index[column]
	if !ok {
		return ""
	}
	return t.rows[i][idx]
}

// Column returns a copy of the values in the named column. A missing
// column is a schema error naming the table.
func (t *Table) Column(column string) ([]string, error) {
	idx, ok := t.index[column]
	if !ok {
		return nil, errors.NewSchemaError(t.name, []string{column})
	}

	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[idx]
	}
	return values, nil
}

// Select projects the table onto the named columns, in the order given,
// preserving row order. Columns the table does not have are skipped, so
// callers that need the full set must check the result's schema.
func (t *Table) Select(name string, columns ...string) *Table {
	kept := make([]string, 0, len(columns))
	indices := make([]int, 0, len(columns))
	for _, c := range columns {
		if idx, ok := t.index[c]; ok {
			kept = append(kept, c)
			indices = append(indices, idx)
		}
	}

	out := New(name, kept)
	for _, row := range t.rows {
		cells := make([]string, len(indices))
		for j, idx := range indices {
			cells[j] = row[idx]
		}
		out.rows = append(out.rows, cells)
	}
	return out
}

// SetColumn sets every row's value in the named column. It is a no-op when
// the column does not exist.
func (t *Table) SetColumn(column, value string) {
	idx, ok := t.index[column]
	if !ok {
		return
	}
	for _, row := range t.rows {
		row[idx] = value
	}
}
