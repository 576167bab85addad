// Package contact records where a ray struck a surface.
package contact

import (
	"frog/material"
	"frog/ray"
	"frog/vmath/tuple"

	"golang.org/x/xerrors"
)

// Surface is the part of a shape a contact needs to finish itself.
type Surface interface {
	NormalAt(p tuple.T) (tuple.T, error)
	Material() material.Material
}

// Contact is computed eagerly when a hit is found.  NormalV always faces
// the side the ray came from; Inside records whether it had to be flipped.
type Contact struct {
	Time     float64
	Location tuple.T
	Shape    Surface
	Inside   bool
	Ray      ray.Ray
	EyeV     tuple.T
	NormalV  tuple.T
}

func New(t float64, location tuple.T, shape Surface, r ray.Ray) (Contact, error) {
	nv, err := shape.NormalAt(location)
	if err != nil {
		return Contact{}, xerrors.Errorf("while computing contact normal: %w", err)
	}

	eyev := tuple.Neg(r.Direction)
	inside := false
	if tuple.IProd(nv, eyev) < 0 {
		nv = tuple.Neg(nv)
		inside = true
	}

	return Contact{
		Time:     t,
		Location: location,
		Shape:    shape,
		Inside:   inside,
		Ray:      r,
		EyeV:     eyev,
		NormalV:  nv,
	}, nil
}
