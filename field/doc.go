/*
Package field samples scalar fields given by equations in x, y and z.

An equation "lhs = rhs" is read as the implicit surface lhs-(rhs) = 0.
Sampling evaluates the field on a regular lattice within a box; the
resulting Grid tells where the field changes sign, i.e. where its zero
level set passes through the box.

   e, _ := field.Equation("x^2+y^2+z^2 = 1")
   b, _ := field.ParseBounds("-2", "2", "-2", "2", "-2", "2")
   g, _ := field.Sample(ctx, e, b, 16)
   lo, hi := g.Range()

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package field

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'xyzcalc.field'.
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.field")
}
