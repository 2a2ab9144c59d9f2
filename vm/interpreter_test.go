package vm

import (
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xyzcalc"
)

func num(f float64) xyzcalc.Token {
	return xyzcalc.Token{Kind: xyzcalc.Number, Text: "n", Value: f}
}

func vari(name string) xyzcalc.Token {
	t, _ := xyzcalc.VariableToken(name)
	return t
}

func op(sym string) xyzcalc.Token {
	t, _ := xyzcalc.OperatorToken(sym)
	return t
}

func fn(name string) xyzcalc.Token {
	t, _ := xyzcalc.FunctionToken(name)
	return t
}

func TestRunArithmetic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.vm")
	defer teardown()
	//
	for i, test := range []struct {
		program []xyzcalc.Token
		result  float64
	}{
		{program: []xyzcalc.Token{num(2), num(2), op("+")}, result: 4},
		{program: []xyzcalc.Token{num(8), num(3), op("-")}, result: 5},
		{program: []xyzcalc.Token{num(8), num(2), op("/")}, result: 4},
		{program: []xyzcalc.Token{num(2), num(3), op("^")}, result: 8},
		{program: []xyzcalc.Token{num(2), vari("x"), op("*"), num(2), op("+")}, result: 8},
		{program: []xyzcalc.Token{vari("x"), vari("y"), op("-"), vari("z"), op("*")}, result: -5},
		{program: []xyzcalc.Token{num(0), num(16), op("-"), fn("abs"), fn("sqrt")}, result: 4},
		{program: []xyzcalc.Token{num(100), fn("log")}, result: 2},
		{program: []xyzcalc.Token{num(math.E), fn("ln")}, result: 1},
	} {
		if r := Run(test.program, 3, 4, 5); math.Abs(r-test.result) > 1e-12 {
			t.Errorf("test %d: expected %g, have %g", i, test.result, r)
		}
	}
}

func TestRunIEEESemantics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.vm")
	defer teardown()
	//
	if r := Run([]xyzcalc.Token{num(1), num(0), op("/")}, 0, 0, 0); !math.IsInf(r, 1) {
		t.Errorf("expected 1/0 to be +Inf, is %g", r)
	}
	if r := Run([]xyzcalc.Token{num(0), num(1), op("-"), fn("sqrt")}, 0, 0, 0); !math.IsNaN(r) {
		t.Errorf("expected sqrt(-1) to be NaN, is %g", r)
	}
}

func TestRunPanicsOnUnderflow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.vm")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected malformed program to panic")
		}
	}()
	Run([]xyzcalc.Token{num(1), op("+")}, 0, 0, 0)
}
