package field

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"

	"github.com/npillmayer/xyzcalc/evaluator"
	"golang.org/x/sync/errgroup"
)

// ErrResolution flags a lattice with fewer than 2 points per axis.
var ErrResolution = errors.New("resolution must be at least 2")

// Grid holds the values of a scalar field on an n×n×n lattice.
type Grid struct {
	N      int    // points per axis
	Bounds Bounds // box spanned by the lattice, inclusive
	step   [3]float64
	values []float64 // index is (k*N+j)*N+i
}

// Sample evaluates e on an n×n×n lattice spanning b. Slices of constant z
// are evaluated concurrently. Sample stops early if ctx is cancelled.
func Sample(ctx context.Context, e *evaluator.Expression, b Bounds, n int) (*Grid, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w, have %d", ErrResolution, n)
	}
	g := &Grid{
		N:      n,
		Bounds: b,
		values: make([]float64, n*n*n),
	}
	for a := 0; a < 3; a++ {
		g.step[a] = (b.Max[a] - b.Min[a]) / float64(n-1)
	}
	tracer().Debugf("sampling %s on %d^3 points within %s", e, n, b)
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for k := 0; k < n; k++ {
		group.Go(func() error {
			return g.sampleSlice(ctx, e, k)
		})
	}
	if err := group.Wait(); err != nil {
		tracer().Errorf("sampling cancelled: %v", err)
		return nil, err
	}
	return g, nil
}

// sampleSlice evaluates the slice of constant z-index k. Each slice writes
// to a disjoint part of g.values.
func (g *Grid) sampleSlice(ctx context.Context, e *evaluator.Expression, k int) error {
	for j := 0; j < g.N; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for i := 0; i < g.N; i++ {
			p := g.Point(i, j, k)
			g.values[g.index(i, j, k)] = e.EvalXYZ(p[0], p[1], p[2])
		}
	}
	return nil
}

func (g *Grid) index(i, j, k int) int {
	return (k*g.N+j)*g.N + i
}

// At returns the field value at lattice point (i, j, k).
func (g *Grid) At(i, j, k int) float64 {
	return g.values[g.index(i, j, k)]
}

// Point returns the coordinates of lattice point (i, j, k).
func (g *Grid) Point(i, j, k int) [3]float64 {
	return [3]float64{
		g.Bounds.Min[0] + float64(i)*g.step[0],
		g.Bounds.Min[1] + float64(j)*g.step[1],
		g.Bounds.Min[2] + float64(k)*g.step[2],
	}
}

// Range returns the minimum and maximum of all sampled values. NaNs are
// ignored; if every value is NaN, both results are NaN.
func (g *Grid) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	seen := false
	for _, v := range g.values {
		if math.IsNaN(v) {
			continue
		}
		seen = true
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if !seen {
		return math.NaN(), math.NaN()
	}
	return
}

// SignChanges counts the lattice cells having corners on both sides of the
// zero level, i.e. the cells an isosurface of the field passes through.
// A corner is inside if its value is negative. Cells with a NaN corner are
// skipped.
func (g *Grid) SignChanges() int {
	count := 0
	for k := 0; k < g.N-1; k++ {
		for j := 0; j < g.N-1; j++ {
			for i := 0; i < g.N-1; i++ {
				if g.crossesZero(i, j, k) {
					count++
				}
			}
		}
	}
	return count
}

func (g *Grid) crossesZero(i, j, k int) bool {
	inside, outside := false, false
	for c := 0; c < 8; c++ {
		v := g.At(i+c&1, j+c>>1&1, k+c>>2&1)
		switch {
		case math.IsNaN(v):
			return false
		case v < 0:
			inside = true
		default:
			outside = true
		}
	}
	return inside && outside
}
