package tabular

import (
	"bytes"
	"strings"
	"testing"
)

func mustAppend(t *testing.T, tbl *Table, cells ...any) {
	t.Helper()
	if err := tbl.AppendRow(cells...); err != nil {
		t.Fatalf("AppendRow: %v", err)
	}
}

// ---------------------------------------------------------------------------
// Construction and access
// ---------------------------------------------------------------------------

func TestAppendRow_ArityMismatch(t *testing.T) {
	tbl := New("a", "b")
	if err := tbl.AppendRow(1); err == nil {
		t.Fatal("expected error for short row")
	}
	if err := tbl.AppendRow(1, 2, 3); err == nil {
		t.Fatal("expected error for long row")
	}
	if tbl.Len() != 0 {
		t.Errorf("failed appends must not add rows, got %d", tbl.Len())
	}
}

func TestColumnsAndCell(t *testing.T) {
	tbl := New("patient_id", "age")
	mustAppend(t, tbl, "P000000", 64)

	cols := tbl.Columns()
	if len(cols) != 2 || cols[0] != "patient_id" || cols[1] != "age" {
		t.Errorf("unexpected columns: %v", cols)
	}
	if !tbl.HasColumn("age") {
		t.Error("expected HasColumn(age) to be true")
	}
	if tbl.HasColumn("gender") {
		t.Error("expected HasColumn(gender) to be false")
	}

	v, ok := tbl.Cell(0, "age")
	if !ok || v != 64 {
		t.Errorf("Cell(0, age) = %v, %v; want 64, true", v, ok)
	}
	if _, ok := tbl.Cell(0, "missing"); ok {
		t.Error("expected Cell on unknown column to report false")
	}
}

func TestMean(t *testing.T) {
	tbl := New("flag")
	for _, v := range []int{1, 0, 0, 1} {
		mustAppend(t, tbl, v)
	}
	m, err := tbl.Mean("flag")
	if err != nil {
		t.Fatalf("Mean: %v", err)
	}
	if m != 0.5 {
		t.Errorf("Mean = %v, want 0.5", m)
	}

	if _, err := tbl.Mean("nope"); err == nil {
		t.Error("expected error for unknown column")
	}

	mixed := New("x")
	mustAppend(t, mixed, "not a number")
	if _, err := mixed.Mean("x"); err == nil {
		t.Error("expected error for non-numeric column")
	}
}

// ---------------------------------------------------------------------------
// Equal / Head
// ---------------------------------------------------------------------------

func TestEqual(t *testing.T) {
	a := New("id", "age")
	mustAppend(t, a, "P000000", 70)
	b := New("id", "age")
	mustAppend(t, b, "P000000", 70)

	if !a.Equal(b) {
		t.Error("identical tables must be Equal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) must be false")
	}

	c := New("id", "age")
	mustAppend(t, c, "P000000", 71)
	if a.Equal(c) {
		t.Error("tables with a differing cell must not be Equal")
	}

	d := New("id", "years")
	mustAppend(t, d, "P000000", 70)
	if a.Equal(d) {
		t.Error("tables with differing column names must not be Equal")
	}
}

func TestHead(t *testing.T) {
	tbl := New("n")
	for i := 0; i < 10; i++ {
		mustAppend(t, tbl, i)
	}

	h := tbl.Head(5)
	if h.Len() != 5 {
		t.Fatalf("Head(5).Len() = %d, want 5", h.Len())
	}
	if v, _ := h.Cell(4, "n"); v != 4 {
		t.Errorf("Head(5) last row = %v, want 4", v)
	}
	if got := tbl.Head(100).Len(); got != 10 {
		t.Errorf("Head beyond length = %d rows, want 10", got)
	}
	if got := tbl.Head(-1).Len(); got != 0 {
		t.Errorf("Head(-1) = %d rows, want 0", got)
	}
}

func TestString_HeaderAndAlignment(t *testing.T) {
	tbl := New("patient_id", "age")
	mustAppend(t, tbl, "P000000", 64)
	out := tbl.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "patient_id") {
		t.Errorf("header line = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "P000000") {
		t.Errorf("row line = %q", lines[1])
	}
}

// ---------------------------------------------------------------------------
// CSV round trip
// ---------------------------------------------------------------------------

func TestCSVRoundTrip(t *testing.T) {
	tbl := New("patient_id", "age", "gender", "readmission")
	mustAppend(t, tbl, "P000000", 64, "F", 0)
	mustAppend(t, tbl, "P000001", 71, "M", 1)

	var buf bytes.Buffer
	if err := tbl.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if !tbl.Equal(got) {
		t.Errorf("round-tripped table differs:\nwant:\n%s\ngot:\n%s", tbl, got)
	}

	// int cells must come back as int, not string
	if v, _ := got.Cell(1, "age"); v != 71 {
		t.Errorf("age cell after round trip = %v (%T), want int 71", v, v)
	}
}

func TestReadCSV_EmptyInput(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}
