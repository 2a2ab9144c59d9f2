/*
Package commands implements a dispatcher for a function-call command syntax.

A command line names a command and its arguments in parentheses:

   evalxy(2x+y, 3, 4)      =>  10.0
   diffxy(2x^2+2y^2, 2, 3) =>  {8.0, 12.0}

The first argument is always an expression, further arguments are numeric
values for the variables x, y and z. The closing parenthesis may be
omitted. Results are rounded to 6 decimal places.

Execute is meant to be fed with raw input lines of a console and never fails:
errors are reported as result text. Dispatch is its error-returning
counterpart.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package commands

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xyzcalc.commands'.
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.commands")
}
