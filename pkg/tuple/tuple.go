package tuple

import "math"

// EPS is the per-component tolerance used by Equal
const EPS = 1e-5

// Tuple represents a point (W = 1) or a vector (W = 0) in homogeneous coordinates
type Tuple struct {
	X, Y, Z, W float64
}

// New creates a tuple from its four components
func New(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1.0}
}

// NewVector creates a vector
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0.0}
}

// IsPoint reports whether W is exactly 1
func (t Tuple) IsPoint() bool {
	return t.W == 1.0
}

// IsVector reports whether W is exactly 0
func (t Tuple) IsVector() bool {
	return t.W == 0.0
}

// Equal reports whether every component differs from other by less than EPS.
// Unlike IsPoint and IsVector this is a tolerance comparison; a tuple with
// W = 0.999999 equals a point but is not one.
func (t Tuple) Equal(other Tuple) bool {
	return math.Abs(t.X-other.X) < EPS &&
		math.Abs(t.Y-other.Y) < EPS &&
		math.Abs(t.Z-other.Z) < EPS &&
		math.Abs(t.W-other.W) < EPS
}

// Add returns the component-wise sum of two tuples
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{
		X: t.X + other.X,
		Y: t.Y + other.Y,
		Z: t.Z + other.Z,
		W: t.W + other.W,
	}
}

// Sub returns the component-wise difference of two tuples
func (t Tuple) Sub(other Tuple) Tuple {
	return Tuple{
		X: t.X - other.X,
		Y: t.Y - other.Y,
		Z: t.Z - other.Z,
		W: t.W - other.W,
	}
}

// Neg returns the tuple with every component negated
func (t Tuple) Neg() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Mul multiplies the tuple by a scalar
func (t Tuple) Mul(scalar float64) Tuple {
	return Tuple{
		X: scalar * t.X,
		Y: scalar * t.Y,
		Z: scalar * t.Z,
		W: scalar * t.W,
	}
}

// Scale multiplies a tuple by a scalar written on the left
func Scale(scalar float64, t Tuple) Tuple {
	return t.Mul(scalar)
}

// Div divides every component by scalar. Dividing by zero follows IEEE-754
// and yields infinities or NaN.
func (t Tuple) Div(scalar float64) Tuple {
	return Tuple{
		X: t.X / scalar,
		Y: t.Y / scalar,
		Z: t.Z / scalar,
		W: t.W / scalar,
	}
}
