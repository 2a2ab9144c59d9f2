package commands

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places results are rounded to.
const Places = 6

// FormatNumber rounds f half away from zero to 6 decimal places and
// formats it with at least one decimal place, e.g. "4.0" or "0.841471".
// Non-finite values are formatted as "NaN", "Infinity" and "-Infinity".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	s := decimal.NewFromFloat(f).Round(Places).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatVector formats the components of a vector as "{a, b, …}", each
// component rounded independently.
func FormatVector(components ...float64) string {
	s := make([]string, len(components))
	for i, c := range components {
		s[i] = FormatNumber(c)
	}
	return "{" + strings.Join(s, ", ") + "}"
}
