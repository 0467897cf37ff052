package validate

import (
	"strings"
	"testing"

	"github.com/dparker/statlab/internal/dataset"
	"github.com/dparker/statlab/internal/generator"
)

func i64(v int64) *int64 { return &v }

func linearParams() GeneratorParams {
	return GeneratorParams{
		Seed:    i64(1),
		A:       i64(5),
		C:       i64(3),
		Modulus: i64(16),
		Count:   i64(20),
	}
}

func hasErrorContaining(r Report, substr string) bool {
	for _, e := range r.Errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestGenerator(t *testing.T) {
	t.Run("ValidLinear", func(t *testing.T) {
		r := Generator(generator.KindLinear, linearParams())
		if !r.Valid {
			t.Fatalf("Expected valid, got errors: %v", r.Errors)
		}
		if len(r.Errors) != 0 {
			t.Errorf("Expected no errors, got %v", r.Errors)
		}
	})

	t.Run("ZeroModulus", func(t *testing.T) {
		p := linearParams()
		p.Modulus = i64(0)
		r := Generator(generator.KindLinear, p)
		if r.Valid {
			t.Fatal("Expected invalid for m=0")
		}
		if !hasErrorContaining(r, "modulus m must be a positive integer") {
			t.Errorf("Expected modulus error, got %v", r.Errors)
		}
	})

	t.Run("MissingSeed", func(t *testing.T) {
		p := linearParams()
		p.Seed = nil
		r := Generator(generator.KindLinear, p)
		if !hasErrorContaining(r, "seed must be a positive integer") {
			t.Errorf("Expected seed error, got %v", r.Errors)
		}
	})

	t.Run("NegativeSeed", func(t *testing.T) {
		p := linearParams()
		p.Seed = i64(-1)
		r := Generator(generator.KindLinear, p)
		if r.Valid {
			t.Fatal("Expected invalid for negative seed")
		}
	})

	t.Run("CountBounds", func(t *testing.T) {
		cases := []struct {
			name  string
			count *int64
			valid bool
		}{
			{"Missing", nil, false},
			{"TooSmall", i64(9), false},
			{"LowerBound", i64(10), true},
			{"UpperBound", i64(100000), true},
			{"TooLarge", i64(100001), false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				p := linearParams()
				p.Count = tc.count
				r := Generator(generator.KindLinear, p)
				if r.Valid != tc.valid {
					t.Errorf("Expected valid=%v, got %v (errors: %v)", tc.valid, r.Valid, r.Errors)
				}
			})
		}
	})

	t.Run("CompleteErrorList", func(t *testing.T) {
		// Every violated rule must be reported, not just the first.
		r := Generator(generator.KindLinear, GeneratorParams{})
		if r.Valid {
			t.Fatal("Expected invalid for empty params")
		}
		for _, want := range []string{"seed", "count", "modulus", "multiplier", "increment"} {
			if !hasErrorContaining(r, want) {
				t.Errorf("Expected an error mentioning %q, got %v", want, r.Errors)
			}
		}
	})

	t.Run("LinearModulusMustExceedSeed", func(t *testing.T) {
		p := linearParams()
		p.Seed = i64(16)
		r := Generator(generator.KindLinear, p)
		if !hasErrorContaining(r, "greater than the seed") {
			t.Errorf("Expected modulus/seed error, got %v", r.Errors)
		}
	})

	t.Run("LinearNegativeIncrement", func(t *testing.T) {
		p := linearParams()
		p.C = i64(-1)
		r := Generator(generator.KindLinear, p)
		if !hasErrorContaining(r, "increment c must be non-negative") {
			t.Errorf("Expected increment error, got %v", r.Errors)
		}
	})

	t.Run("ZeroIncrementIsFine", func(t *testing.T) {
		p := linearParams()
		p.C = i64(0)
		if r := Generator(generator.KindLinear, p); !r.Valid {
			t.Errorf("Expected valid for c=0, got %v", r.Errors)
		}
	})

	t.Run("Multiplicative", func(t *testing.T) {
		p := GeneratorParams{Seed: i64(3), A: i64(7), Modulus: i64(64), Count: i64(50)}
		if r := Generator(generator.KindMultiplicative, p); !r.Valid {
			t.Fatalf("Expected valid, got %v", r.Errors)
		}

		p.A = i64(0)
		r := Generator(generator.KindMultiplicative, p)
		if !hasErrorContaining(r, "multiplier a must be positive") {
			t.Errorf("Expected multiplier error, got %v", r.Errors)
		}

		p.A = nil
		r = Generator(generator.KindMultiplicative, p)
		if !hasErrorContaining(r, "multiplier a is required") {
			t.Errorf("Expected required error, got %v", r.Errors)
		}
	})

	t.Run("QuadraticZeroCoefficient", func(t *testing.T) {
		p := GeneratorParams{
			Seed: i64(1), A: i64(0), B: i64(2), C: i64(3),
			Modulus: i64(97), Count: i64(30),
		}
		r := Generator(generator.KindQuadratic, p)
		if r.Valid {
			t.Fatal("Expected invalid for a=0")
		}
		if !hasErrorContaining(r, "quadratic coefficient") {
			t.Errorf("Expected quadratic coefficient error, got %v", r.Errors)
		}
	})

	t.Run("QuadraticRequiredTerms", func(t *testing.T) {
		p := GeneratorParams{Seed: i64(1), A: i64(4), Modulus: i64(97), Count: i64(30)}
		r := Generator(generator.KindQuadratic, p)
		if !hasErrorContaining(r, "linear coefficient b is required") {
			t.Errorf("Expected b error, got %v", r.Errors)
		}
		if !hasErrorContaining(r, "constant term c is required") {
			t.Errorf("Expected c error, got %v", r.Errors)
		}
	})

	t.Run("QuadraticAllowsZeroConstant", func(t *testing.T) {
		p := GeneratorParams{
			Seed: i64(1), A: i64(4), B: i64(0), C: i64(0),
			Modulus: i64(97), Count: i64(30),
		}
		if r := Generator(generator.KindQuadratic, p); !r.Valid {
			t.Errorf("Expected valid, got %v", r.Errors)
		}
	})

	t.Run("UnknownKind", func(t *testing.T) {
		r := Generator(generator.Kind("mersenne"), linearParams())
		if r.Valid {
			t.Fatal("Expected invalid for unknown kind")
		}
		if len(r.Errors) != 1 {
			t.Fatalf("Expected exactly one error, got %v", r.Errors)
		}
		if !strings.Contains(r.Errors[0], "invalid generator type: mersenne") {
			t.Errorf("Error should name the type, got %q", r.Errors[0])
		}
	})

	t.Run("AliasesValidateAsBaseKinds", func(t *testing.T) {
		if r := Generator(generator.KindMixed, linearParams()); !r.Valid {
			t.Errorf("Mixed should validate as linear, got %v", r.Errors)
		}
		p := GeneratorParams{Seed: i64(3), A: i64(7), Modulus: i64(64), Count: i64(50)}
		if r := Generator(generator.KindLehmer, p); !r.Valid {
			t.Errorf("Lehmer should validate as multiplicative, got %v", r.Errors)
		}
	})
}

func TestParamsConversion(t *testing.T) {
	p := linearParams()
	gp := p.Params()
	if gp.Seed != 1 || gp.A != 5 || gp.C != 3 || gp.Modulus != 16 || gp.Count != 20 {
		t.Errorf("Unexpected conversion: %+v", gp)
	}

	empty := GeneratorParams{}.Params()
	if empty.Seed != 0 || empty.Count != 0 {
		t.Errorf("Nil fields should convert to zero, got %+v", empty)
	}
}

func TestDataset(t *testing.T) {
	numeric := &dataset.Table{
		Columns: []string{"x", "y"},
		Rows: [][]string{
			{"1", "2.5"},
			{"3", "4.5"},
		},
	}

	t.Run("ValidTable", func(t *testing.T) {
		r := Dataset(numeric, nil)
		if !r.Valid {
			t.Fatalf("Expected valid, got %v", r.Errors)
		}
	})

	t.Run("EmptyTable", func(t *testing.T) {
		r := Dataset(&dataset.Table{Columns: []string{"x"}}, nil)
		if r.Valid {
			t.Fatal("Expected invalid for empty table")
		}
		if !hasErrorContaining(r, "empty") {
			t.Errorf("Expected empty error, got %v", r.Errors)
		}
	})

	t.Run("MissingRequiredColumn", func(t *testing.T) {
		r := Dataset(numeric, []string{"x", "z"})
		if !hasErrorContaining(r, "required column not found: z") {
			t.Errorf("Expected missing column error, got %v", r.Errors)
		}
	})

	t.Run("NoNumericColumns", func(t *testing.T) {
		text := &dataset.Table{
			Columns: []string{"name"},
			Rows:    [][]string{{"alice"}, {"bob"}},
		}
		r := Dataset(text, nil)
		if !hasErrorContaining(r, "no numeric columns") {
			t.Errorf("Expected numeric error, got %v", r.Errors)
		}
	})

	t.Run("MissingValues", func(t *testing.T) {
		gaps := &dataset.Table{
			Columns: []string{"x", "y"},
			Rows: [][]string{
				{"1", ""},
				{"", "2"},
			},
		}
		r := Dataset(gaps, nil)
		if r.Valid {
			t.Fatal("Expected invalid for missing values")
		}
		if !hasErrorContaining(r, "missing values found in columns: x, y") {
			t.Errorf("Expected missing-values error, got %v", r.Errors)
		}
	})
}
