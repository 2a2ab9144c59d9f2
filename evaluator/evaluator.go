package evaluator

import (
	"errors"
	"fmt"

	"github.com/npillmayer/xyzcalc"
	"github.com/npillmayer/xyzcalc/grammar"
	"github.com/npillmayer/xyzcalc/vm"
)

// ErrUnboundVariable flags an evaluation request binding fewer variables
// than the expression refers to.
var ErrUnboundVariable = errors.New("unbound variable")

// Expression is a compiled algebraic expression.
type Expression struct {
	source  string          // normalized input text
	program []xyzcalc.Token // postfix program
}

// New compiles text into an expression. Malformed input is rejected with
// an error of type *grammar.ParseError.
func New(text string) (*Expression, error) {
	source, program, err := grammar.Compile(text)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("compiled %q to [%s]", source, grammar.Postfix(program))
	return &Expression{source: source, program: program}, nil
}

// String returns the normalized source text of an expression.
func (e *Expression) String() string {
	return e.source
}

// Postfix returns the program of an expression as text.
func (e *Expression) Postfix() string {
	return grammar.Postfix(e.program)
}

// Program returns a copy of the postfix program.
func (e *Expression) Program() []xyzcalc.Token {
	p := make([]xyzcalc.Token, len(e.program))
	copy(p, e.program)
	return p
}

// Uses is a predicate: does the expression refer to variable v?
func (e *Expression) Uses(v string) bool {
	for _, t := range e.program {
		if t.Kind == xyzcalc.Variable && t.Text == v {
			return true
		}
	}
	return false
}

// Variables returns the names of the variables the expression refers to,
// in alphabetical order.
func (e *Expression) Variables() []string {
	var vars []string
	for _, v := range []string{"x", "y", "z"} {
		if e.Uses(v) {
			vars = append(vars, v)
		}
	}
	return vars
}

// checkUnbound returns an error if the expression refers to any of
// the variables in unbound.
func (e *Expression) checkUnbound(unbound ...string) error {
	for _, v := range unbound {
		if e.Uses(v) {
			tracer().P("expr", e.source).Errorf("variable %s is unbound", v)
			return fmt.Errorf("%w %s in %q", ErrUnboundVariable, v, e.source)
		}
	}
	return nil
}

// Eval evaluates an expression in x. It is an error if the expression
// refers to y or z.
func (e *Expression) Eval(x float64) (float64, error) {
	if err := e.checkUnbound("y", "z"); err != nil {
		return 0, err
	}
	return vm.Run(e.program, x, 0, 0), nil
}

// EvalXY evaluates an expression in x and y. It is an error if the
// expression refers to z.
func (e *Expression) EvalXY(x, y float64) (float64, error) {
	if err := e.checkUnbound("z"); err != nil {
		return 0, err
	}
	return vm.Run(e.program, x, y, 0), nil
}

// EvalXYZ evaluates an expression in x, y and z.
func (e *Expression) EvalXYZ(x, y, z float64) float64 {
	return vm.Run(e.program, x, y, z)
}
