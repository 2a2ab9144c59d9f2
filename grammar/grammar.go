package grammar

import (
	"strings"

	"github.com/emirpasic/gods/stacks/linkedliststack"
	"github.com/npillmayer/xyzcalc"
)

// Compile normalizes text and parses it into a postfix program.
// It returns the normalized source together with the program.
func Compile(text string) (string, []xyzcalc.Token, error) {
	source := Normalize(text)
	program, err := Parse(source)
	return source, program, err
}

// Parse converts normalized text into a sequence of tokens in postfix order,
// using a shunting-yard algorithm.
//
// Operators of equal precedence associate to the left, including '^'.
// Function names are held back on the operator stack until their argument
// group closes. Open groups left at the end of input are closed silently.
//
// Errors are of type *ParseError.
func Parse(normalized string) ([]xyzcalc.Token, error) {
	lexemes, err := split(normalized)
	if err != nil {
		return nil, err
	}
	p := &parser{
		source: normalized,
		ops:    linkedliststack.New(),
	}
	for _, lx := range lexemes {
		if err = p.consume(lx); err != nil {
			return nil, err
		}
	}
	for !p.ops.Empty() {
		v, _ := p.ops.Pop()
		if t := v.(xyzcalc.Token); t.Kind != xyzcalc.GroupMarker {
			if err = p.emit(t, len(normalized)); err != nil {
				return nil, err
			}
		}
	}
	if p.depth != 1 {
		return nil, parseError(ErrMalformedExpression, "", len(normalized), normalized)
	}
	tracer().Debugf("postfix program for %q: %s", normalized, Postfix(p.output))
	return p.output, nil
}

// Postfix renders a program as space separated text.
func Postfix(program []xyzcalc.Token) string {
	var b strings.Builder
	for i, t := range program {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// parser holds the state of a single shunting-yard run.
type parser struct {
	source string
	ops    *linkedliststack.Stack // operators, functions and group markers
	output []xyzcalc.Token        // postfix program
	depth  int                    // stack depth the program will reach at runtime
}

func (p *parser) consume(lx lexeme) error {
	switch {
	case isNumeric(lx.text):
		t, ok := xyzcalc.NumberToken(lx.text)
		if !ok {
			return parseError(ErrInvalidToken, lx.text, lx.pos, p.source)
		}
		return p.emit(t, lx.pos)
	case xyzcalc.IsVariable(lx.text):
		t, _ := xyzcalc.VariableToken(lx.text)
		return p.emit(t, lx.pos)
	case isAlphabetic(lx.text):
		t, ok := xyzcalc.FunctionToken(lx.text)
		if !ok {
			return parseError(ErrUnknownFunction, lx.text, lx.pos, p.source)
		}
		p.ops.Push(t)
	case xyzcalc.IsOperator(lx.text):
		return p.operator(lx)
	case lx.text == "(":
		p.ops.Push(xyzcalc.GroupToken)
	case lx.text == ")":
		return p.closeGroup(lx)
	default:
		return parseError(ErrInvalidToken, lx.text, lx.pos, p.source)
	}
	return nil
}

// operator moves operators of higher or equal precedence from the operator
// stack to the output, then pushes the new operator.
func (p *parser) operator(lx lexeme) error {
	op, _ := xyzcalc.OperatorToken(lx.text)
	prec := xyzcalc.Precedence(op.Text)
	for {
		v, ok := p.ops.Peek()
		if !ok {
			break
		}
		top := v.(xyzcalc.Token)
		if top.Kind != xyzcalc.Operator || xyzcalc.Precedence(top.Text) < prec {
			break
		}
		p.ops.Pop()
		if err := p.emit(top, lx.pos); err != nil {
			return err
		}
	}
	p.ops.Push(op)
	return nil
}

// closeGroup pops up to the matching group marker. If the group is the
// argument of a function, the function is emitted as well.
func (p *parser) closeGroup(lx lexeme) error {
	for {
		v, ok := p.ops.Pop()
		if !ok {
			return parseError(ErrUnbalancedParentheses, lx.text, lx.pos, p.source)
		}
		t := v.(xyzcalc.Token)
		if t.Kind == xyzcalc.GroupMarker {
			break
		}
		if err := p.emit(t, lx.pos); err != nil {
			return err
		}
	}
	if v, ok := p.ops.Peek(); ok && v.(xyzcalc.Token).Kind == xyzcalc.Function {
		p.ops.Pop()
		return p.emit(v.(xyzcalc.Token), lx.pos)
	}
	return nil
}

// emit appends a token to the program, tracking the runtime stack depth.
// A program which would underflow the stack is rejected.
func (p *parser) emit(t xyzcalc.Token, pos int) error {
	switch t.Kind {
	case xyzcalc.Number, xyzcalc.Variable:
		p.depth++
	case xyzcalc.Operator:
		if p.depth < 2 {
			return parseError(ErrMalformedExpression, t.Text, pos, p.source)
		}
		p.depth--
	case xyzcalc.Function:
		if p.depth < 1 {
			return parseError(ErrMalformedExpression, t.Text, pos, p.source)
		}
	}
	p.output = append(p.output, t)
	return nil
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isNumberChar(s[i]) {
			return false
		}
	}
	return len(s) > 0
}

func isAlphabetic(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
