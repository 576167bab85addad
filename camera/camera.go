// Package camera maps pixel coordinates to world-space rays.
package camera

import (
	"math"

	"frog/ray"
	"frog/vmath/mat44"
	"frog/vmath/tuple"

	"golang.org/x/xerrors"
)

// Camera is a pinhole camera one unit in front of its canvas.  Transform
// takes world space to camera space; it is usually built with
// transform.View.
type Camera struct {
	Height      int
	Width       int
	FieldOfView float64
	Transform   mat44.T

	PixelSize  float64
	HalfWidth  float64
	HalfHeight float64

	// Filled by Crush.  Only trusted while Transform == crushedFor.
	crushed       bool
	crushedFor    mat44.T
	cameraToWorld mat44.T
}

func New(height, width int, fov float64) *Camera {
	c := &Camera{
		FieldOfView: fov,
		Transform:   mat44.Identity,
	}
	c.Resize(height, width)
	return c
}

// Resize changes the canvas dimensions and recomputes the derived sizes.
func (c *Camera) Resize(height, width int) {
	c.Height = height
	c.Width = width

	halfView := math.Tan(c.FieldOfView / 2)
	aspect := float64(height) / float64(width)
	if aspect >= 1 {
		c.HalfWidth = halfView
		c.HalfHeight = halfView / aspect
	} else {
		c.HalfWidth = halfView * aspect
		c.HalfHeight = halfView
	}
	c.PixelSize = c.HalfWidth * 2 / float64(height)
}

// Crush caches the inverse of the current transform.
func (c *Camera) Crush() error {
	inv, err := mat44.Inverse(c.Transform)
	if err != nil {
		return xerrors.Errorf("while inverting camera transform: %w", err)
	}
	c.crushed = true
	c.crushedFor = c.Transform
	c.cameraToWorld = inv
	return nil
}

func (c *Camera) inverse() (mat44.T, error) {
	if c.crushed && c.crushedFor == c.Transform {
		return c.cameraToWorld, nil
	}
	inv, err := mat44.Inverse(c.Transform)
	if err != nil {
		return mat44.T{}, xerrors.Errorf("while inverting camera transform: %w", err)
	}
	return inv, nil
}

// RayAtPixel returns the ray from the camera through the center of pixel
// (x, y).
func (c *Camera) RayAtPixel(x, y int) (ray.Ray, error) {
	inv, err := c.inverse()
	if err != nil {
		return ray.Ray{}, err
	}

	xOffset := (float64(x) + 0.5) * c.PixelSize
	yOffset := (float64(y) + 0.5) * c.PixelSize

	target := mat44.MulMT(inv, tuple.Point(c.HalfWidth-xOffset, c.HalfHeight-yOffset, -1))
	origin := mat44.MulMT(inv, tuple.Point(0, 0, 0))

	return ray.Ray{
		Origin:    origin,
		Direction: tuple.Normalize(tuple.SubTT(target, origin)),
	}, nil
}
