package field

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/xyzcalc/evaluator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.field")
	defer teardown()
	//
	for i, test := range []struct {
		text   string
		source string
	}{
		{"x^2+y^2", "x^2+y^2"},
		{"x^2+y^2 = 1", "x^2+y^2-(1)"},
		{"x = y", "x-(y)"},
	} {
		e, err := Equation(test.text)
		if err != nil {
			t.Errorf("test %d: unexpected error %v", i, err)
			continue
		}
		if e.String() != test.source {
			t.Errorf("test %d: expected %q to compile as %q, have %q", i, test.text, test.source, e.String())
		}
	}
	_, err := Equation("x=y=z")
	assert.True(t, errors.Is(err, ErrInvalidEquation))
	_, err = Equation("x=")
	assert.Error(t, err)
}

func TestParseBounds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.field")
	defer teardown()
	//
	b, err := ParseBounds("-pi", "pi", "0-1", "1", "2^3", "|0-4|")
	require.NoError(t, err)
	assert.InDelta(t, -math.Pi, b.Min[0], 1e-12)
	assert.InDelta(t, math.Pi, b.Max[0], 1e-12)
	assert.Equal(t, [3]float64{-math.Pi, -1, 8}, [3]float64{b.Min[0], b.Min[1], b.Min[2]})
	assert.Equal(t, 4.0, b.Max[2])
	//
	_, err = ParseBounds("0", "1", "y", "1", "0", "1")
	assert.True(t, errors.Is(err, ErrInvalidBounds))
	assert.True(t, errors.Is(err, evaluator.ErrUnboundVariable))
	_, err = ParseBoundsList("0,1,0,1,0")
	assert.True(t, errors.Is(err, ErrInvalidBounds))
	b, err = ParseBoundsList("-1,1,-2,2,-3,3")
	require.NoError(t, err)
	assert.Equal(t, Bounds{Min: [3]float64{-1, -2, -3}, Max: [3]float64{1, 2, 3}}, b)
}

func TestSampleSphere(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.field")
	defer teardown()
	//
	e, err := Equation("x^2+y^2+z^2=1")
	require.NoError(t, err)
	b, err := ParseBoundsList("-2,2,-2,2,-2,2")
	require.NoError(t, err)
	g, err := Sample(context.Background(), e, b, 5)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0, 0, 0}, g.Point(2, 2, 2))
	assert.Equal(t, [3]float64{-2, -1, 2}, g.Point(0, 1, 4))
	assert.Equal(t, -1.0, g.At(2, 2, 2))
	assert.Equal(t, 0.0, g.At(3, 2, 2))
	assert.Equal(t, 11.0, g.At(0, 0, 0))
	lo, hi := g.Range()
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 11.0, hi)
	// only the origin lies inside the sphere, it is shared by 8 cells
	assert.Equal(t, 8, g.SignChanges())
}

func TestSampleNaN(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.field")
	defer teardown()
	//
	e, err := Equation("sqrt(x)")
	require.NoError(t, err)
	g, err := Sample(context.Background(), e, Bounds{Min: [3]float64{-2, 0, 0}, Max: [3]float64{-1, 1, 1}}, 2)
	require.NoError(t, err)
	lo, hi := g.Range()
	assert.True(t, math.IsNaN(lo))
	assert.True(t, math.IsNaN(hi))
	assert.Equal(t, 0, g.SignChanges())
}

func TestSampleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "xyzcalc.field")
	defer teardown()
	//
	e, err := Equation("x+y+z")
	require.NoError(t, err)
	_, err = Sample(context.Background(), e, Bounds{}, 1)
	assert.True(t, errors.Is(err, ErrResolution))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Sample(ctx, e, Bounds{Max: [3]float64{1, 1, 1}}, 8)
	assert.True(t, errors.Is(err, context.Canceled))
}
