/*
Package vm implements the stack machine executing postfix programs.

Programs are produced by package grammar. Executing a program never fails:
the parser guarantees that a program never underflows the value stack and
leaves exactly one value on it. Arithmetic exceptions like division by zero
or logarithms of negative numbers are not errors, but produce IEEE NaN or
infinity values.

Executing a program does not modify it, therefore a program may be run by
any number of goroutines concurrently.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vm

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'xyzcalc.vm'
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.vm")
}
