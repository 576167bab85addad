package ray

import (
	"frog/vmath/mat44"
	"frog/vmath/tuple"

	"golang.org/x/xerrors"
)

type Ray struct {
	Origin    tuple.T
	Direction tuple.T
}

// New builds a ray, rejecting an origin that is not a point or a direction
// that is not a vector.
func New(origin, direction tuple.T) (Ray, error) {
	if err := origin.CheckType(tuple.TypePnt); err != nil {
		return Ray{}, xerrors.Errorf("while checking ray origin: %w", err)
	}
	if err := direction.CheckType(tuple.TypeVec); err != nil {
		return Ray{}, xerrors.Errorf("while checking ray direction: %w", err)
	}
	return Ray{Origin: origin, Direction: direction}, nil
}

func (r Ray) Position(t float64) tuple.T {
	return tuple.AddTT(r.Origin, tuple.MulTS(r.Direction, t))
}

// Transform premultiplies both origin and direction by m.  The direction is
// not renormalized, so times stay comparable with the untransformed ray.
func (r Ray) Transform(m mat44.T) Ray {
	return Ray{
		Origin:    mat44.MulMT(m, r.Origin),
		Direction: mat44.MulMT(m, r.Direction),
	}
}
