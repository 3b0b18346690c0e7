// Package expression compiles user-supplied formula strings into
// float64-producing callables for plotting. The variable x is bound to the
// sample position; t carries elapsed time for live plots and is 0 otherwise.
package expression

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/brianbland/termplot/pkg/shape"
)

// Program is a compiled formula. It is reusable but not safe for concurrent
// evaluation, matching the single-threaded rendering model.
type Program struct {
	prog *vm.Program
	env  map[string]interface{}
}

// Compile parses and type-checks a formula over the variables x and t plus
// the standard math environment (sin, cos, sqrt, pi, ...).
func Compile(formula string) (*Program, error) {
	env := newEnv()
	prog, err := expr.Compile(formula, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compiling formula %q: %w", formula, err)
	}
	return &Program{prog: prog, env: env}, nil
}

// Eval evaluates the formula at x with t=0. Evaluation failures surface as
// NaN, which the rasterizer treats as a gap rather than an error.
func (p *Program) Eval(x float64) float64 {
	return p.EvalAt(x, 0)
}

// EvalAt evaluates the formula at x with elapsed time t.
func (p *Program) EvalAt(x, t float64) float64 {
	p.env["x"] = x
	p.env["t"] = t
	out, err := expr.Run(p.prog, p.env)
	if err != nil {
		return math.NaN()
	}
	y, ok := out.(float64)
	if !ok {
		return math.NaN()
	}
	return y
}

// Shape returns the formula as a Continuous shape with t=0.
func (p *Program) Shape() shape.Continuous {
	return p.Eval
}

// ShapeAt returns the formula as a Continuous shape evaluated at a fixed
// elapsed time, for live redraw loops.
func (p *Program) ShapeAt(t float64) shape.Continuous {
	return func(x float64) float64 { return p.EvalAt(x, t) }
}

func newEnv() map[string]interface{} {
	return map[string]interface{}{
		"x": float64(0),
		"t": float64(0),

		"pi": math.Pi,
		"e":  math.E,

		"abs":   math.Abs,
		"acos":  math.Acos,
		"asin":  math.Asin,
		"atan":  math.Atan,
		"ceil":  math.Ceil,
		"cos":   math.Cos,
		"cosh":  math.Cosh,
		"exp":   math.Exp,
		"floor": math.Floor,
		"log":   math.Log,
		"log10": math.Log10,
		"log2":  math.Log2,
		"pow":   math.Pow,
		"sin":   math.Sin,
		"sinh":  math.Sinh,
		"sqrt":  math.Sqrt,
		"tan":   math.Tan,
		"tanh":  math.Tanh,
	}
}
