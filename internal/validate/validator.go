// Package validate performs structural validation of patient-record tables
// before they are handed to downstream consumers. It checks exactly two
// things: that the required columns are present, and that values fall inside
// realistic ranges. The first violation found is returned; nothing is
// repaired or clamped.
package validate

import (
	"errors"
	"fmt"

	"github.com/synthehr/synthehr/pkg/tabular"
)

var (
	ErrMissingRequired = errors.New("missing required column")
	ErrOutOfRange      = errors.New("out of range value")
)

// RequiredColumns must all be present in a valid table. The race column is
// carried by the generator but is not required here.
var RequiredColumns = []string{
	"patient_id", "age", "gender", "readmission", "sepsis", "mortality",
}

// Age bounds for validation. Wider than the generator's clip range on
// purpose: validation accepts any plausible human age, not just what the
// generator emits.
const (
	ageLow  = 0
	ageHigh = 120
)

var flagColumns = []string{"readmission", "sepsis", "mortality"}

// Validate checks a table against the required-column and value-range rules.
// It returns an error wrapping ErrMissingRequired or ErrOutOfRange for the
// first violation found, or nil when the table is valid.
func Validate(t *tabular.Table) error {
	if t == nil {
		return fmt.Errorf("%w: no table", ErrMissingRequired)
	}

	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			return fmt.Errorf("%w: %s", ErrMissingRequired, col)
		}
	}

	for i := 0; i < t.Len(); i++ {
		v, _ := t.Cell(i, "age")
		age, ok := v.(int)
		if !ok {
			return fmt.Errorf("%w: age at row %d is not an integer (%v)", ErrOutOfRange, i, v)
		}
		if age < ageLow || age > ageHigh {
			return fmt.Errorf("%w: age %d at row %d outside [%d, %d]", ErrOutOfRange, age, i, ageLow, ageHigh)
		}

		for _, col := range flagColumns {
			fv, _ := t.Cell(i, col)
			flag, ok := fv.(int)
			if !ok || (flag != 0 && flag != 1) {
				return fmt.Errorf("%w: %s at row %d must be 0 or 1, got %v", ErrOutOfRange, col, i, fv)
			}
		}
	}

	return nil
}
