package vm

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/xyzcalc"
)

// Run executes a postfix program with variables bound to x, y and z and
// returns the single value left on the stack.
//
// A program violating the stack discipline is a programming error and
// makes Run panic.
func Run(program []xyzcalc.Token, x, y, z float64) float64 {
	regs := RegisterSet{X: x, Y: y, Z: z}
	stack := arraystack.New()
	for _, t := range program {
		switch t.Kind {
		case xyzcalc.Number:
			stack.Push(t.Value)
		case xyzcalc.Variable:
			stack.Push(regs.Load(t))
		case xyzcalc.Operator:
			rhs := pop(stack, t)
			lhs := pop(stack, t)
			stack.Push(xyzcalc.Apply(t.Text, lhs, rhs))
		case xyzcalc.Function:
			f, ok := xyzcalc.UnaryFunction(t.Text)
			if !ok {
				panic(fmt.Sprintf("vm: unknown function %q in program", t.Text))
			}
			stack.Push(f(pop(stack, t)))
		default:
			panic(fmt.Sprintf("vm: cannot execute token %q of kind %s", t.Text, t.Kind))
		}
	}
	if stack.Size() != 1 {
		tracer().Errorf("program %v left %d values on the stack", program, stack.Size())
		panic(fmt.Sprintf("vm: program left %d values on the stack", stack.Size()))
	}
	v, _ := stack.Pop()
	return v.(float64)
}

func pop(stack *arraystack.Stack, t xyzcalc.Token) float64 {
	v, ok := stack.Pop()
	if !ok {
		tracer().Errorf("stack underflow executing %q", t.Text)
		panic(fmt.Sprintf("vm: stack underflow at %q", t.Text))
	}
	return v.(float64)
}
