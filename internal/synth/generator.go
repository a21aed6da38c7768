// Package synth generates synthetic patient-record datasets for exercising
// downstream clinical tooling. Records combine basic demographics with three
// independent outcome flags (readmission, sepsis, mortality) drawn at
// configurable base rates; all randomness derives from one caller-supplied
// seed, so identical parameters always produce identical tables.
package synth

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/synthehr/synthehr/pkg/tabular"
)

var (
	// ErrInvalidParams indicates a non-positive patient count or a rate
	// outside [0, 1]. Generation fails fast rather than clamping.
	ErrInvalidParams = errors.New("invalid generation parameters")
)

// Columns of a generated table, in output order.
var Columns = []string{
	"patient_id", "age", "gender", "race",
	"readmission", "sepsis", "mortality",
}

// ---------------------------------------------------------------------------
// Parameters
// ---------------------------------------------------------------------------

// Params controls one generation run. All randomness derives from Seed; the
// three rates are target marginal probabilities for the outcome flags.
type Params struct {
	Patients        int
	Seed            int64
	ReadmissionRate float64
	SepsisRate      float64
	MortalityRate   float64
}

// DefaultParams returns the documented defaults: 1000 patients, seed 42,
// readmission 5%, sepsis 2%, mortality 3%.
func DefaultParams() Params {
	return Params{
		Patients:        1000,
		Seed:            42,
		ReadmissionRate: 0.05,
		SepsisRate:      0.02,
		MortalityRate:   0.03,
	}
}

// Validate checks the parameters without generating anything.
func (p Params) Validate() error {
	if p.Patients <= 0 {
		return fmt.Errorf("%w: patient count must be positive, got %d", ErrInvalidParams, p.Patients)
	}
	for _, r := range []struct {
		name string
		rate float64
	}{
		{"readmission", p.ReadmissionRate},
		{"sepsis", p.SepsisRate},
		{"mortality", p.MortalityRate},
	} {
		if r.rate < 0 || r.rate > 1 {
			return fmt.Errorf("%w: %s rate must be in [0, 1], got %g", ErrInvalidParams, r.name, r.rate)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Distributions
// ---------------------------------------------------------------------------

const (
	ageMean = 65.0
	ageStd  = 15.0
	ageMin  = 18
	ageMax  = 100
)

type categorical struct {
	labels []string
	probs  []float64
}

var (
	genders = categorical{
		labels: []string{"M", "F"},
		probs:  []float64{0.48, 0.52},
	}
	races = categorical{
		labels: []string{"White", "Black", "Hispanic", "Asian", "Other"},
		probs:  []float64{0.60, 0.15, 0.15, 0.05, 0.05},
	}
)

// ---------------------------------------------------------------------------
// Generator
// ---------------------------------------------------------------------------

// Generator draws patient records from a seeded source. One Generator per
// call; it holds no state other than its rng and is not safe for concurrent
// use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a generator seeded for reproducibility. The seed is
// used verbatim, including zero.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func (g *Generator) age() int {
	v := g.rng.NormFloat64()*ageStd + ageMean
	if v < ageMin {
		v = ageMin
	}
	if v > ageMax {
		v = ageMax
	}
	return int(v)
}

func (g *Generator) pick(c categorical) string {
	u := g.rng.Float64()
	cum := 0.0
	for i, p := range c.probs {
		cum += p
		if u < cum {
			return c.labels[i]
		}
	}
	return c.labels[len(c.labels)-1]
}

func (g *Generator) bernoulli(rate float64) int {
	if g.rng.Float64() < rate {
		return 1
	}
	return 0
}

// Generate produces a table of p.Patients synthetic records. Draws happen
// column by column in a fixed order (ages, genders, races, then the three
// flag columns), so the output is a pure function of the parameters.
//
// The outcome flags are drawn independently of the demographics and of each
// other; correlated outcome modeling (age-linked mortality and the like) is
// deliberately absent.
func Generate(p Params) (*tabular.Table, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	g := NewGenerator(p.Seed)
	n := p.Patients

	ages := make([]int, n)
	for i := range ages {
		ages[i] = g.age()
	}
	genderVals := make([]string, n)
	for i := range genderVals {
		genderVals[i] = g.pick(genders)
	}
	raceVals := make([]string, n)
	for i := range raceVals {
		raceVals[i] = g.pick(races)
	}
	readmission := make([]int, n)
	for i := range readmission {
		readmission[i] = g.bernoulli(p.ReadmissionRate)
	}
	sepsis := make([]int, n)
	for i := range sepsis {
		sepsis[i] = g.bernoulli(p.SepsisRate)
	}
	mortality := make([]int, n)
	for i := range mortality {
		mortality[i] = g.bernoulli(p.MortalityRate)
	}

	t := tabular.New(Columns...)
	for i := 0; i < n; i++ {
		if err := t.AppendRow(
			patientID(i), ages[i], genderVals[i], raceVals[i],
			readmission[i], sepsis[i], mortality[i],
		); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func patientID(i int) string {
	return fmt.Sprintf("P%06d", i)
}
