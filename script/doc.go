/*
Package script runs Lua scripts against the expression engine.

A Runtime is a Lua state with the engine's commands installed as global
functions. Expressions are handed over as strings:

   print(evalx("2x+2", 2))          -- 6
   gx, gy = diffxy("2x^2+2y^2", 2, 3)
   print(execute("help eval"))

Engine errors are raised as Lua errors and may be caught with pcall.
A Runtime is not safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xyzcalc.script'.
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.script")
}
