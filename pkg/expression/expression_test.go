package expression

import (
	"math"
	"testing"
)

func TestCompileAndEval(t *testing.T) {
	cases := []struct {
		formula string
		x       float64
		want    float64
	}{
		{"x", 3.5, 3.5},
		{"x * x", -2, 4},
		{"sin(x)", math.Pi / 2, 1},
		{"sqrt(abs(x))", -9, 3},
		{"pow(2.0, x)", 10, 1024},
		{"pi", 0, math.Pi},
		{"cos(x) + sin(x) / 2.0", 0, 1},
	}

	for _, tc := range cases {
		p, err := Compile(tc.formula)
		if err != nil {
			t.Errorf("Compile(%q) failed: %v", tc.formula, err)
			continue
		}
		if got := p.Eval(tc.x); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%q at x=%g: expected %g, got %g", tc.formula, tc.x, tc.want, got)
		}
	}
}

func TestCompileError(t *testing.T) {
	for _, formula := range []string{"x +", "sin(", "nosuchfn(x)"} {
		if _, err := Compile(formula); err == nil {
			t.Errorf("Compile(%q) should have failed", formula)
		}
	}
}

func TestEvalAnomaliesBecomeNaN(t *testing.T) {
	p, err := Compile("sin(x) / x")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if got := p.Eval(0); !math.IsNaN(got) {
		t.Errorf("0/0 should evaluate to NaN, got %g", got)
	}
	if got := p.Eval(1); math.Abs(got-math.Sin(1)) > 1e-9 {
		t.Errorf("expected sin(1), got %g", got)
	}
}

func TestEvalAt(t *testing.T) {
	p, err := Compile("x + t")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if got := p.EvalAt(1, 2); got != 3 {
		t.Errorf("expected 3, got %g", got)
	}
	if got := p.Eval(1); got != 1 {
		t.Errorf("t should default to 0, got %g", got)
	}
}

func TestShapeAt(t *testing.T) {
	p, err := Compile("sin(x + t)")
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	f := p.ShapeAt(math.Pi / 2)
	if got := f(0); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected 1, got %g", got)
	}
}
