/*
Package grammar translates algebraic text into postfix programs.

Translation is done in two separate passes. First, Normalize rewrites the
human-written input into an unambiguous form: it removes whitespace, unifies
brackets, expands absolute-value bars, makes unary minus and implicit
multiplication explicit and substitutes the constants pi and e:

   2x^2+sin(y)-|z|   =>   2*x^2+sin(y)-abs(z)
   -5(x+1)y          =>   0-5*(x+1)*y

Then Parse splits the normalized text into lexemes and runs a shunting-yard
conversion, resulting in a sequence of tokens in postfix order:

   2*x^2+sin(y)-abs(z)   =>   2 x 2 ^ * y sin + z abs -

Parse checks the structure of the program it creates, so a program returned
without an error is safe to be executed by a stack machine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xyzcalc.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.grammar")
}
