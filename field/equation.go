package field

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/xyzcalc/evaluator"
)

// ErrInvalidEquation flags an equation with more than one equal sign.
var ErrInvalidEquation = errors.New("invalid equation or expression")

// ErrInvalidBounds flags a malformed boundary specification.
var ErrInvalidBounds = errors.New("invalid boundaries")

// Equation compiles an equation "lhs=rhs" as the expression lhs-(rhs).
// Text without an equal sign is compiled as is.
func Equation(text string) (*evaluator.Expression, error) {
	switch strings.Count(text, "=") {
	case 0:
	case 1:
		parts := strings.SplitN(text, "=", 2)
		text = parts[0] + "-(" + parts[1] + ")"
	default:
		tracer().Errorf("equation has more than one equal sign: %q", text)
		return nil, fmt.Errorf("%w: %q", ErrInvalidEquation, text)
	}
	return evaluator.New(text)
}

// Bounds is an axis-aligned box. Index 0 is the x-axis, 1 the y-axis and
// 2 the z-axis.
type Bounds struct {
	Min, Max [3]float64
}

// ParseBounds evaluates six boundary expressions. Boundaries may be
// constant expressions like "-pi" or "2^3"; they must not refer to y or z.
func ParseBounds(x1, x2, y1, y2, z1, z2 string) (Bounds, error) {
	var b Bounds
	for i, text := range []string{x1, x2, y1, y2, z1, z2} {
		e, err := evaluator.New(text)
		if err != nil {
			return Bounds{}, fmt.Errorf("%w: %w", ErrInvalidBounds, err)
		}
		v, err := e.Eval(0)
		if err != nil {
			return Bounds{}, fmt.Errorf("%w: %w", ErrInvalidBounds, err)
		}
		if i%2 == 0 {
			b.Min[i/2] = v
		} else {
			b.Max[i/2] = v
		}
	}
	tracer().Debugf("bounds are %v", b)
	return b, nil
}

// ParseBoundsList parses a comma separated list of six boundary expressions,
// in the order x1,x2,y1,y2,z1,z2.
func ParseBoundsList(list string) (Bounds, error) {
	parts := strings.Split(list, ",")
	if len(parts) != 6 {
		return Bounds{}, fmt.Errorf("%w: need 6 values, have %d", ErrInvalidBounds, len(parts))
	}
	return ParseBounds(parts[0], parts[1], parts[2], parts[3], parts[4], parts[5])
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g…%g]×[%g…%g]×[%g…%g]", b.Min[0], b.Max[0],
		b.Min[1], b.Max[1], b.Min[2], b.Max[2])
}
