package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes the table as a CSV document: one header record with the
// column names, then one record per row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.cols); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	record := make([]string, len(t.cols))
	for i, row := range t.rows {
		for j, v := range row {
			record[j] = fmt.Sprintf("%v", v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a CSV document produced by WriteCSV back into a table.
// Cells that parse as integers become int, then float64, otherwise they
// stay strings, so a round-tripped table validates the same as the
// original.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	t := New(header...)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", t.Len(), err)
		}
		row := make([]any, len(record))
		for j, s := range record {
			row[j] = parseCell(s)
		}
		if err := t.AppendRow(row...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func parseCell(s string) any {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
