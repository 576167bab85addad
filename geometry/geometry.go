package geometry

import (
	"math"

	"frog/contact"
	"frog/material"
	"frog/ray"
	"frog/vmath/mat44"
	"frog/vmath/tuple"

	"golang.org/x/xerrors"
)

// Shape is a surface that can be placed in a world.
//
// Intersect returns every contact of the ray with the surface, in the order
// the shape computes them; callers that need the nearest one sort by Time.
// Crush precomputes whatever the shape can cache about its current
// transform.  It must be called before a shape is shared across goroutines.
type Shape interface {
	Intersect(r ray.Ray) ([]contact.Contact, error)
	NormalAt(p tuple.T) (tuple.T, error)
	Material() material.Material
	Crush() error
}

// Sphere is a sphere of any radius around Origin, placed in the world by
// Transform (object space to world space).
type Sphere struct {
	Radius      float64
	Origin      tuple.T
	Transform   mat44.T
	TheMaterial material.Material

	// Filled by Crush.  Only trusted while Transform == crushedFor.
	crushed      bool
	crushedFor   mat44.T
	worldToModel mat44.T
	normalMatrix mat44.T
}

func NewSphere(radius float64, origin tuple.T) (*Sphere, error) {
	if err := origin.CheckType(tuple.TypePnt); err != nil {
		return nil, xerrors.Errorf("while checking sphere origin: %w", err)
	}
	return &Sphere{
		Radius:      radius,
		Origin:      origin,
		Transform:   mat44.Identity,
		TheMaterial: material.Default(),
	}, nil
}

// Apply appends m to the sphere's transform, so m acts first in object
// space.
func (s *Sphere) Apply(m mat44.T) {
	s.Transform = mat44.MulMM(s.Transform, m)
}

func (s *Sphere) Material() material.Material {
	return s.TheMaterial
}

func (s *Sphere) Crush() error {
	inv, err := mat44.Inverse(s.Transform)
	if err != nil {
		return xerrors.Errorf("while inverting sphere transform: %w", err)
	}
	s.crushed = true
	s.crushedFor = s.Transform
	s.worldToModel = inv
	s.normalMatrix = mat44.Transpose(inv)
	return nil
}

// inverse returns the world-to-model matrix and its transpose.
func (s *Sphere) inverse() (mat44.T, mat44.T, error) {
	if s.crushed && s.crushedFor == s.Transform {
		return s.worldToModel, s.normalMatrix, nil
	}
	inv, err := mat44.Inverse(s.Transform)
	if err != nil {
		return mat44.T{}, mat44.T{}, xerrors.Errorf("while inverting sphere transform: %w", err)
	}
	return inv, mat44.Transpose(inv), nil
}

func (s *Sphere) Intersect(r ray.Ray) ([]contact.Contact, error) {
	inv, _, err := s.inverse()
	if err != nil {
		return nil, err
	}

	objRay := r.Transform(inv)
	sphereToRay := tuple.SubTT(objRay.Origin, s.Origin)

	a := tuple.IProd(objRay.Direction, objRay.Direction)
	b := 2 * tuple.IProd(objRay.Direction, sphereToRay)
	c := tuple.IProd(sphereToRay, sphereToRay) - s.Radius*s.Radius
	d := b*b - 4*a*c

	var times []float64
	switch {
	case d < 0:
		return nil, nil
	case d == 0:
		times = []float64{-b / (2 * a)}
	default:
		sd := math.Sqrt(d)
		times = []float64{(-b + sd) / (2 * a), (-b - sd) / (2 * a)}
	}

	result := make([]contact.Contact, 0, len(times))
	for _, t := range times {
		hit, err := contact.New(t, r.Position(t), s, r)
		if err != nil {
			return nil, xerrors.Errorf("while building sphere contact at t=%v: %w", t, err)
		}
		result = append(result, hit)
	}
	return result, nil
}

func (s *Sphere) NormalAt(p tuple.T) (tuple.T, error) {
	if err := p.CheckType(tuple.TypePnt); err != nil {
		return tuple.T{}, xerrors.Errorf("while checking sphere normal point: %w", err)
	}

	inv, nm, err := s.inverse()
	if err != nil {
		return tuple.T{}, err
	}

	objPoint := mat44.MulMT(inv, p)
	objNormal := tuple.SubTT(objPoint, s.Origin)

	// The transposed inverse leaks translation into w.
	worldNormal := mat44.MulMT(nm, objNormal)
	worldNormal.W = 0

	return tuple.Normalize(worldNormal), nil
}
