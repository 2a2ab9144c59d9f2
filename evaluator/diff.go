package evaluator

// Epsilon is the step width for numerical differentiation.
const Epsilon = 1e-6

// Vec2 is a gradient in x and y.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a gradient in x, y and z.
type Vec3 struct {
	X, Y, Z float64
}

// partial calculates a central difference along one axis (0=x, 1=y, 2=z).
func (e *Expression) partial(axis int, at [3]float64) float64 {
	hi, lo := at, at
	hi[axis] += Epsilon
	lo[axis] -= Epsilon
	return (e.EvalXYZ(hi[0], hi[1], hi[2]) - e.EvalXYZ(lo[0], lo[1], lo[2])) / (2 * Epsilon)
}

// DiffX calculates the derivative in x. It is an error if the expression
// refers to y or z.
func (e *Expression) DiffX(x float64) (float64, error) {
	if err := e.checkUnbound("y", "z"); err != nil {
		return 0, err
	}
	return e.partial(0, [3]float64{x, 0, 0}), nil
}

// DiffXY calculates the partial derivatives in x and y. It is an error if
// the expression refers to z.
func (e *Expression) DiffXY(x, y float64) (Vec2, error) {
	if err := e.checkUnbound("z"); err != nil {
		return Vec2{}, err
	}
	at := [3]float64{x, y, 0}
	return Vec2{X: e.partial(0, at), Y: e.partial(1, at)}, nil
}

// DiffXYZ calculates the partial derivatives in x, y and z.
func (e *Expression) DiffXYZ(x, y, z float64) Vec3 {
	at := [3]float64{x, y, z}
	return Vec3{X: e.partial(0, at), Y: e.partial(1, at), Z: e.partial(2, at)}
}
