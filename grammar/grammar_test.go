package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xyzcalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerSplit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.grammar")
	defer teardown()
	//
	lexemes, err := split("2.5*sin(x)+abc")
	require.NoError(t, err)
	var texts []string
	for _, lx := range lexemes {
		texts = append(texts, lx.text)
	}
	assert.Equal(t, []string{"2.5", "*", "sin", "(", "x", ")", "+", "abc"}, texts)
	assert.Equal(t, 11, lexemes[7].pos)
}

func TestParsePostfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.grammar")
	defer teardown()
	//
	for i, test := range []struct {
		input, postfix string
	}{
		{input: "2+2", postfix: "2 2 +"},
		{input: "2*x^2+sin(y)-abs(z)", postfix: "2 x 2 ^ * y sin + z abs -"},
		{input: "8-3-2", postfix: "8 3 - 2 -"},
		{input: "8/4/2", postfix: "8 4 / 2 /"},
		{input: "2^3^2", postfix: "2 3 ^ 2 ^"},
		{input: "(1+2)*3", postfix: "1 2 + 3 *"},
		{input: "sqrt(abs(0-4))", postfix: "0 4 - abs sqrt"},
		{input: "(2+3", postfix: "2 3 +"},
		{input: "abs(x", postfix: "x abs"},
	} {
		program, err := Parse(test.input)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}
		if p := Postfix(program); p != test.postfix {
			t.Errorf("test %d: expected %q to parse to %q, have %q", i, test.input, test.postfix, p)
		}
		for _, tok := range program {
			if tok.Kind == xyzcalc.GroupMarker {
				t.Errorf("test %d: group marker in program", i)
			}
		}
	}
}

func TestParseNumberValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.grammar")
	defer teardown()
	//
	program, err := Parse(".5+3.")
	require.NoError(t, err)
	require.Len(t, program, 3)
	assert.Equal(t, 0.5, program[0].Value)
	assert.Equal(t, 3.0, program[1].Value)
	assert.Equal(t, xyzcalc.Operator, program[2].Kind)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.grammar")
	defer teardown()
	//
	for i, test := range []struct {
		input  string
		err    error
		lexeme string
		pos    int
	}{
		{input: "2+#", err: ErrInvalidToken, lexeme: "#", pos: 2},
		{input: "1..2", err: ErrInvalidToken, lexeme: "1..2", pos: 0},
		{input: "sin2", err: ErrInvalidToken, lexeme: "sin2", pos: 0},
		{input: "2=3", err: ErrInvalidToken, lexeme: "=", pos: 1},
		{input: "foo(2)", err: ErrUnknownFunction, lexeme: "foo", pos: 0},
		{input: "2)", err: ErrUnbalancedParentheses, lexeme: ")", pos: 1},
		{input: "(1))", err: ErrUnbalancedParentheses, lexeme: ")", pos: 3},
		{input: "", err: ErrMalformedExpression},
		{input: "2*-3", err: ErrMalformedExpression, lexeme: "*", pos: 2},
		{input: "sin", err: ErrMalformedExpression, lexeme: "sin", pos: 3},
		{input: "2+", err: ErrMalformedExpression, lexeme: "+", pos: 2},
		{input: "2 3", err: ErrInvalidToken, lexeme: " ", pos: 1},
		{input: "(2)(3)", err: ErrMalformedExpression},
	} {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("test %d: expected %q to fail", i, test.input)
			continue
		}
		if !errors.Is(err, test.err) {
			t.Errorf("test %d: expected error %v, have %v", i, test.err, err)
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("test %d: expected error of type *ParseError, have %T", i, err)
			continue
		}
		if test.lexeme != "" && (perr.Lexeme != test.lexeme || perr.Pos != test.pos) {
			t.Errorf("test %d: expected %q at %d, have %q at %d", i, test.lexeme, test.pos,
				perr.Lexeme, perr.Pos)
		}
	}
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.grammar")
	defer teardown()
	//
	source, program, err := Compile("2x(y)")
	require.NoError(t, err)
	assert.Equal(t, "2*x*(y)", source)
	assert.Equal(t, "2 x * y *", Postfix(program))
}
