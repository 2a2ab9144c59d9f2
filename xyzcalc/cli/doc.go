package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'xyzcalc.cli'
func tracer() tracing.Trace {
	return tracing.Select("xyzcalc.cli")
}
