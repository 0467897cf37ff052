// Package generator implements congruential pseudo-random number
// generators for simulation coursework: linear, multiplicative and
// quadratic recurrences over integer state, normalized to [0,1).
//
// Generators are deliberately unvalidated. They trust the caller (the
// validate package is the gate) and will happily produce degenerate
// constant or cycling sequences for bad parameters, which is exactly
// what makes the raw recurrence arithmetic testable in isolation. They
// never panic on any finite integer input.
package generator

import (
	"fmt"
)

// Kind identifies a congruential recurrence.
type Kind string

const (
	KindLinear         Kind = "linear"
	KindMultiplicative Kind = "multiplicative"
	KindQuadratic      Kind = "quadratic"

	// Textbook aliases: a mixed generator is the linear recurrence,
	// a Lehmer generator is the multiplicative one.
	KindMixed  Kind = "mixed"
	KindLehmer Kind = "lehmer"
)

// Params carries the integer inputs for any of the recurrences. Fields
// that a given kind does not use are ignored.
type Params struct {
	Seed    int64 `json:"seed"`
	A       int64 `json:"a"` // multiplier (linear/multiplicative) or quadratic coefficient
	B       int64 `json:"b"` // linear coefficient (quadratic only)
	C       int64 `json:"c"` // increment (linear) or constant term (quadratic)
	Modulus int64 `json:"m"`
	Count   int   `json:"n"`
}

// mod is Python-style floored modulo: the result has the sign of m,
// so for m > 0 it always lands in [0, m). m == 0 maps to 0 rather
// than panicking.
func mod(v, m int64) int64 {
	if m == 0 {
		return 0
	}
	r := v % m
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}

// normalize divides the recurrence state by the modulus. With floored
// modulo the state is in [0, m) for positive m, so the result is in
// [0, 1). A zero modulus degenerates to 0.
func normalize(x, m int64) float64 {
	if m == 0 {
		return 0
	}
	return float64(x) / float64(m)
}

// Linear runs x[i+1] = (a*x[i] + c) mod m for n steps starting from
// seed and returns the normalized sequence.
func Linear(seed, a, c, m int64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	x := seed
	for i := 0; i < n; i++ {
		x = mod(a*x+c, m)
		out[i] = normalize(x, m)
	}
	return out
}

// Multiplicative runs x[i+1] = (a*x[i]) mod m for n steps.
func Multiplicative(seed, a, m int64, n int) []float64 {
	return Linear(seed, a, 0, m, n)
}

// Quadratic runs x[i+1] = (a*x[i]^2 + b*x[i] + c) mod m for n steps.
// A zero quadratic coefficient is the caller's problem: the recurrence
// still runs, it just collapses to the linear one.
func Quadratic(seed, a, b, c, m int64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	x := seed
	for i := 0; i < n; i++ {
		x = mod(a*x*x+b*x+c, m)
		out[i] = normalize(x, m)
	}
	return out
}

// Generate dispatches on kind. The only error a generator ever returns
// is an unknown kind; everything else is the validator's job.
func Generate(kind Kind, p Params) ([]float64, error) {
	switch kind {
	case KindLinear, KindMixed:
		return Linear(p.Seed, p.A, p.C, p.Modulus, p.Count), nil
	case KindMultiplicative, KindLehmer:
		return Multiplicative(p.Seed, p.A, p.Modulus, p.Count), nil
	case KindQuadratic:
		return Quadratic(p.Seed, p.A, p.B, p.C, p.Modulus, p.Count), nil
	default:
		return nil, fmt.Errorf("unknown generator kind: %s", kind)
	}
}
