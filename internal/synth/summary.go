package synth

import (
	"fmt"

	"github.com/synthehr/synthehr/pkg/tabular"
)

// Summary captures the empirical outcome rates of a generated table.
type Summary struct {
	Patients        int
	ReadmissionRate float64
	SepsisRate      float64
	MortalityRate   float64
}

// Summarize computes the empirical mean of each outcome flag column.
func Summarize(t *tabular.Table) (Summary, error) {
	s := Summary{Patients: t.Len()}
	for _, col := range []struct {
		name string
		dst  *float64
	}{
		{"readmission", &s.ReadmissionRate},
		{"sepsis", &s.SepsisRate},
		{"mortality", &s.MortalityRate},
	} {
		m, err := t.Mean(col.name)
		if err != nil {
			return Summary{}, fmt.Errorf("summarize %s: %w", col.name, err)
		}
		*col.dst = m
	}
	return s, nil
}
