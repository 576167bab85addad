// Package transform builds the affine 4x4 matrices used to place shapes and
// cameras.
//
// Every builder returns a plain mat44.T.  Transforms compose by ordinary
// matrix multiplication and act on the tuple to their right, so in
// MulMM(a, b) the transform b is applied first.
package transform

import (
	"math"

	"frog/vmath/mat44"
	"frog/vmath/tuple"

	"golang.org/x/xerrors"
)

func Translation(x, y, z float64) mat44.T {
	return mat44.T{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

func Scaling(x, y, z float64) mat44.T {
	return mat44.T{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

func RotationX(rad float64) mat44.T {
	s, c := math.Sincos(rad)
	return mat44.T{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func RotationY(rad float64) mat44.T {
	s, c := math.Sincos(rad)
	return mat44.T{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func RotationZ(rad float64) mat44.T {
	s, c := math.Sincos(rad)
	return mat44.T{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Shearing moves each coordinate in proportion to the other two.  xy is the
// amount x moves in proportion to y, and so on.
func Shearing(xy, xz, yx, yz, zx, zy float64) mat44.T {
	return mat44.T{
		{1, xy, xz, 0},
		{yx, 1, yz, 0},
		{zx, zy, 1, 0},
		{0, 0, 0, 1},
	}
}

// Chain multiplies its arguments left to right.  The last matrix is the
// first one applied to a tuple.
func Chain(ms ...mat44.T) mat44.T {
	result := mat44.Identity
	for _, m := range ms {
		result = mat44.MulMM(result, m)
	}
	return result
}

// View returns the world-to-camera transform for an eye at eye looking at
// target.  up only needs to point roughly upward; it is re-orthogonalized
// against the viewing direction.
func View(eye, target, up tuple.T) (mat44.T, error) {
	if err := eye.CheckType(tuple.TypePnt); err != nil {
		return mat44.T{}, xerrors.Errorf("while checking view eye: %w", err)
	}
	if err := target.CheckType(tuple.TypePnt); err != nil {
		return mat44.T{}, xerrors.Errorf("while checking view target: %w", err)
	}
	if err := up.CheckType(tuple.TypeVec); err != nil {
		return mat44.T{}, xerrors.Errorf("while checking view up vector: %w", err)
	}

	upN := tuple.Normalize(up)
	forward := tuple.Normalize(tuple.SubTT(target, eye))
	left := tuple.CProd(forward, upN)
	trueUp := tuple.CProd(left, forward)

	orientation := mat44.T{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	return mat44.MulMM(orientation, Translation(-eye.X, -eye.Y, -eye.Z)), nil
}
