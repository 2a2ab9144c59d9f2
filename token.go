package xyzcalc

import (
	"math"
	"strconv"
	"strings"
)

// TokenKind classifies a lexical unit of an expression.
type TokenKind int8

// Token kinds. GroupMarker is used by the parser only and never appears in
// a compiled program.
const (
	Undefined TokenKind = iota
	Number
	Variable
	Operator
	Function
	GroupMarker
)

func (k TokenKind) String() string {
	switch k {
	case Number:
		return "number"
	case Variable:
		return "variable"
	case Operator:
		return "operator"
	case Function:
		return "function"
	case GroupMarker:
		return "group"
	}
	return "undefined"
}

// Token is an immutable lexical unit: a numeric literal, a variable name,
// an operator symbol, a function name or a group marker.
type Token struct {
	Kind  TokenKind
	Text  string
	Value float64 // numeric value for tokens of kind Number
}

// NumberToken creates a number token from a literal.
// Returns false if lexeme is not a valid decimal literal.
func NumberToken(lexeme string) (Token, bool) {
	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return Token{}, false
	}
	return Token{Kind: Number, Text: lexeme, Value: f}, true
}

// VariableToken creates a token for one of the variables x, y or z.
func VariableToken(name string) (Token, bool) {
	if !IsVariable(name) {
		return Token{}, false
	}
	return Token{Kind: Variable, Text: name}, true
}

// OperatorToken creates a token for a binary operator symbol.
func OperatorToken(op string) (Token, bool) {
	if !IsOperator(op) {
		return Token{}, false
	}
	return Token{Kind: Operator, Text: op}, true
}

// FunctionToken creates a token for a registered function name.
func FunctionToken(name string) (Token, bool) {
	if !IsFunction(name) {
		return Token{}, false
	}
	return Token{Kind: Function, Text: name}, true
}

// GroupToken is the marker for an open parenthesis.
var GroupToken = Token{Kind: GroupMarker, Text: "("}

func (t Token) String() string {
	return t.Text
}

// --- Registries ------------------------------------------------------------

// Variables lists the variable names an expression may refer to.
const Variables = "xyz"

var precedence = map[string]int{
	"+": 1,
	"-": 1,
	"*": 2,
	"/": 2,
	"^": 3,
}

var functions = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"asin": math.Asin,
	"acos": math.Acos,
	"atan": math.Atan,
	"log":  math.Log10,
	"ln":   math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// IsVariable is a predicate: is s one of x, y, z?
func IsVariable(s string) bool {
	return len(s) == 1 && strings.Contains(Variables, s)
}

// IsOperator is a predicate: is s a binary operator symbol?
func IsOperator(s string) bool {
	_, ok := precedence[s]
	return ok
}

// Precedence returns the binding strength of an operator, or 0 for
// anything which is not an operator.
func Precedence(op string) int {
	return precedence[op]
}

// IsFunction is a predicate: is s the name of a registered function?
func IsFunction(s string) bool {
	_, ok := functions[s]
	return ok
}

// UnaryFunction returns the implementation of a registered function.
func UnaryFunction(name string) (func(float64) float64, bool) {
	f, ok := functions[name]
	return f, ok
}

// Apply applies a binary operator to its operands.
// Unknown operators yield NaN.
func Apply(op string, lhs, rhs float64) float64 {
	switch op {
	case "+":
		return lhs + rhs
	case "-":
		return lhs - rhs
	case "*":
		return lhs * rhs
	case "/":
		return lhs / rhs
	case "^":
		return math.Pow(lhs, rhs)
	}
	tracer().Errorf("not an operator: %q", op)
	return math.NaN()
}
