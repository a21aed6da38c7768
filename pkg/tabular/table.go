// Package tabular provides a small ordered-column, row-major in-memory
// table. It is the interchange type between the synthetic-record generator,
// the structural validator, and the CLI's CSV export: columns keep their
// declared order, rows keep their append order, and cells are typed values
// (int, float64, or string).
package tabular

import (
	"fmt"
	"strings"
)

// Table holds a fixed set of named columns and an append-only list of rows.
// The zero value is not usable; construct with New.
type Table struct {
	cols []string
	rows [][]any
}

// New returns an empty table with the given column names, in order.
func New(cols ...string) *Table {
	t := &Table{cols: make([]string, len(cols))}
	copy(t.cols, cols)
	return t
}

// AppendRow adds one row. The number of cells must match the column count.
func (t *Table) AppendRow(cells ...any) error {
	if len(cells) != len(t.cols) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.cols))
	}
	row := make([]any, len(cells))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// HasColumn reports whether the table declares the named column.
func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// ColumnIndex returns the position of the named column, or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.cols {
		if c == name {
			return i
		}
	}
	return -1
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []any {
	out := make([]any, len(t.rows[i]))
	copy(out, t.rows[i])
	return out
}

// Cell returns the value at (row, col). The second return is false when the
// column does not exist.
func (t *Table) Cell(row int, col string) (any, bool) {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return nil, false
	}
	return t.rows[row][idx], true
}

// Mean returns the arithmetic mean of a numeric column. Int and float64
// cells are accepted; anything else is an error. An empty table has mean 0.
func (t *Table) Mean(col string) (float64, error) {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return 0, fmt.Errorf("no such column: %s", col)
	}
	if len(t.rows) == 0 {
		return 0, nil
	}
	var sum float64
	for i, row := range t.rows {
		switch v := row[idx].(type) {
		case int:
			sum += float64(v)
		case float64:
			sum += v
		default:
			return 0, fmt.Errorf("column %s row %d: non-numeric cell %T", col, i, row[idx])
		}
	}
	return sum / float64(len(t.rows)), nil
}

// Equal reports full structural equality: same columns in the same order,
// same row count, and every cell equal.
func (t *Table) Equal(other *Table) bool {
	if other == nil {
		return false
	}
	if len(t.cols) != len(other.cols) || len(t.rows) != len(other.rows) {
		return false
	}
	for i := range t.cols {
		if t.cols[i] != other.cols[i] {
			return false
		}
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if t.rows[i][j] != other.rows[i][j] {
				return false
			}
		}
	}
	return true
}

// Head returns a new table with the first n rows (all rows if n exceeds the
// row count).
func (t *Table) Head(n int) *Table {
	if n > len(t.rows) {
		n = len(t.rows)
	}
	if n < 0 {
		n = 0
	}
	out := New(t.cols...)
	for i := 0; i < n; i++ {
		out.rows = append(out.rows, t.Row(i))
	}
	return out
}

// String renders the table as a fixed-width preview, header first.
func (t *Table) String() string {
	widths := make([]int, len(t.cols))
	for i, c := range t.cols {
		widths[i] = len(c)
	}
	cells := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := fmt.Sprintf("%v", v)
			cells[i][j] = s
			if len(s) > widths[j] {
				widths[j] = len(s)
			}
		}
	}

	var b strings.Builder
	for j, c := range t.cols {
		if j > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%-*s", widths[j], c)
	}
	b.WriteByte('\n')
	for _, row := range cells {
		for j, s := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[j], s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
