// Package validate is the gate in front of the generators and the
// upload pipeline. It only inspects and reports; it never mutates and
// never stops at the first problem, so a Report always carries the
// complete error list for the caller to present at once.
package validate

import (
	"fmt"
	"strings"

	"github.com/dparker/statlab/internal/dataset"
	"github.com/dparker/statlab/internal/generator"
)

// Count bounds for a single generation request.
const (
	MinCount = 10
	MaxCount = 100000
)

// Report is the terminal result of a validation pass.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

func makeReport(errs []string) Report {
	return Report{Valid: len(errs) == 0, Errors: errs}
}

// GeneratorParams mirrors generator.Params with pointer fields so a
// missing parameter is distinguishable from an explicit zero.
type GeneratorParams struct {
	Seed    *int64 `json:"seed"`
	A       *int64 `json:"a"`
	B       *int64 `json:"b"`
	C       *int64 `json:"c"`
	Modulus *int64 `json:"m"`
	Count   *int64 `json:"n"`
}

// Params converts validated input to the plain integer form the
// generators consume. Missing fields become zero; call this only after
// Generator reported valid.
func (p GeneratorParams) Params() generator.Params {
	deref := func(v *int64) int64 {
		if v == nil {
			return 0
		}
		return *v
	}
	return generator.Params{
		Seed:    deref(p.Seed),
		A:       deref(p.A),
		B:       deref(p.B),
		C:       deref(p.C),
		Modulus: deref(p.Modulus),
		Count:   int(deref(p.Count)),
	}
}

// Generator checks the parameter set for the given generator kind and
// returns every rule violation found.
func Generator(kind generator.Kind, p GeneratorParams) Report {
	var errs []string

	if p.Seed == nil || *p.Seed <= 0 {
		errs = append(errs, "seed must be a positive integer")
	}
	if p.Count == nil || *p.Count < MinCount || *p.Count > MaxCount {
		errs = append(errs, fmt.Sprintf("count must be between %d and %d", MinCount, MaxCount))
	}
	if p.Modulus == nil || *p.Modulus <= 0 {
		errs = append(errs, "modulus m must be a positive integer")
	}

	switch kind {
	case generator.KindLinear, generator.KindMixed:
		if p.A == nil {
			errs = append(errs, "multiplier a is required")
		} else if *p.A <= 0 {
			errs = append(errs, "multiplier a must be positive")
		}
		if p.C == nil {
			errs = append(errs, "increment c is required")
		} else if *p.C < 0 {
			errs = append(errs, "increment c must be non-negative")
		}
		errs = appendModulusSeed(errs, p)

	case generator.KindMultiplicative, generator.KindLehmer:
		if p.A == nil {
			errs = append(errs, "multiplier a is required")
		} else if *p.A <= 0 {
			errs = append(errs, "multiplier a must be positive")
		}
		errs = appendModulusSeed(errs, p)

	case generator.KindQuadratic:
		if p.A == nil || *p.A == 0 {
			errs = append(errs, "quadratic coefficient a is required and must be non-zero")
		}
		if p.B == nil {
			errs = append(errs, "linear coefficient b is required")
		}
		if p.C == nil {
			errs = append(errs, "constant term c is required")
		}

	default:
		errs = append(errs, fmt.Sprintf("invalid generator type: %s", kind))
	}

	return makeReport(errs)
}

func appendModulusSeed(errs []string, p GeneratorParams) []string {
	if p.Modulus != nil && p.Seed != nil && *p.Modulus > 0 && *p.Seed > 0 && *p.Modulus <= *p.Seed {
		errs = append(errs, "modulus m must be greater than the seed")
	}
	return errs
}

// Dataset checks an uploaded table: it must be non-empty, contain the
// required columns, have at least one numeric column, and have no
// missing values. An empty table short-circuits since the remaining
// rules are meaningless without rows.
func Dataset(t *dataset.Table, required []string) Report {
	if t.NumRows() == 0 {
		return makeReport([]string{"the dataset is empty"})
	}

	var errs []string
	for _, col := range required {
		if !t.HasColumn(col) {
			errs = append(errs, fmt.Sprintf("required column not found: %s", col))
		}
	}
	if len(t.NumericColumns()) == 0 {
		errs = append(errs, "no numeric columns found in the dataset")
	}
	if cols := t.MissingColumns(); len(cols) > 0 {
		errs = append(errs, fmt.Sprintf("missing values found in columns: %s", strings.Join(cols, ", ")))
	}

	return makeReport(errs)
}
