// Package tuple is the homogeneous 4-component value shared by points and
// vectors.
//
// W is a type tag: TypeVec (0) for a free vector, TypePnt (1) for a point.
// Arithmetic never fails; adding two points or subtracting a point from a
// vector simply produces a tag that is neither, which CheckType and
// CheckTypeValidity then reject.
package tuple

import (
	"math"

	"frog/rterror"
)

const (
	TypeVec = 0.0
	TypePnt = 1.0
)

// Epsilon is the component-wise tolerance used by Equal.
const Epsilon = 0.0001

type T struct {
	X, Y, Z, W float64
}

func Vec3(x, y, z float64) T {
	return T{x, y, z, TypeVec}
}

func Point(x, y, z float64) T {
	return T{x, y, z, TypePnt}
}

func (t T) IsPoint() bool {
	return t.W == TypePnt
}

func (t T) IsVector() bool {
	return t.W == TypeVec
}

// CheckType fails with a type error unless the tag is exactly want.
func (t T) CheckType(want float64) error {
	if t.W != want {
		return rterror.Typef("tuple %v has w=%v, want %s", t, t.W, typeName(want))
	}
	return nil
}

// CheckTypeValidity fails with a type error unless t is a point or a vector.
func (t T) CheckTypeValidity() error {
	if t.W != TypeVec && t.W != TypePnt {
		return rterror.Typef("tuple %v has invalid w=%v", t, t.W)
	}
	return nil
}

func typeName(w float64) string {
	switch w {
	case TypeVec:
		return "vector"
	case TypePnt:
		return "point"
	}
	return "invalid"
}

// Norm includes W, which is zero for every well-formed vector.
func (t T) Norm() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize divides every component, W included, by the norm.
func Normalize(t T) T {
	l := t.Norm()
	return T{
		t.X / l,
		t.Y / l,
		t.Z / l,
		t.W / l,
	}
}

func AddTT(a, b T) T {
	return T{
		a.X + b.X,
		a.Y + b.Y,
		a.Z + b.Z,
		a.W + b.W,
	}
}

func SubTT(a, b T) T {
	return T{
		a.X - b.X,
		a.Y - b.Y,
		a.Z - b.Z,
		a.W - b.W,
	}
}

func Neg(a T) T {
	return T{-a.X, -a.Y, -a.Z, -a.W}
}

func MulTS(a T, s float64) T {
	return T{
		a.X * s,
		a.Y * s,
		a.Z * s,
		a.W * s,
	}
}

func MulST(s float64, a T) T {
	return MulTS(a, s)
}

func IProd(a, b T) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// CProd only looks at the x, y and z components and always returns a vector.
func CProd(a, b T) T {
	return Vec3(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Reflect reflects v about the normal n.
func Reflect(v, n T) T {
	return SubTT(v, MulTS(n, 2*IProd(v, n)))
}

func Equal(a, b T) bool {
	return math.Abs(a.X-b.X) < Epsilon &&
		math.Abs(a.Y-b.Y) < Epsilon &&
		math.Abs(a.Z-b.Z) < Epsilon &&
		math.Abs(a.W-b.W) < Epsilon
}
