/*
Package evaluator provides compiled expressions in up to three variables.

An Expression is created once from human-written text and may then be
evaluated any number of times with different variable bindings:

   e, err := evaluator.New("2x^2+sin(y)")
   v, err := e.EvalXY(2, 0)      // v == 8
   g, err := e.DiffXY(2, 0)      // g == Vec2{8, 1}

Evaluation with fewer bindings than the expression refers to is an error
(ErrUnboundVariable) and is detected before the expression is run.
Partial derivatives are calculated numerically by central differences.

Expressions are immutable and may be shared between goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xyzcalc.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.evaluator")
}
