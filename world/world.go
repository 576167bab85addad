// Package world holds the shapes and the single light of a scene, and
// resolves a ray to a color.
package world

import (
	"sort"

	"frog/color"
	"frog/contact"
	"frog/geometry"
	"frog/light"
	"frog/ray"
	"frog/shading"
	"frog/vmath/tuple"

	"github.com/golang/glog"
	"golang.org/x/xerrors"
)

// World does not own its objects.  Callers may mutate them between calls,
// but not while a render is in flight.
type World struct {
	Objects []geometry.Shape
	Light   light.Light
}

// New returns an empty world lit by a white light at (-10, 10, -10).
func New() *World {
	return &World{
		Light: light.Light{
			Intensity: color.White,
			Location:  tuple.Point(-10, 10, -10),
		},
	}
}

func (w *World) Add(shapes ...geometry.Shape) {
	w.Objects = append(w.Objects, shapes...)
}

// Crush crushes every object in the world.
func (w *World) Crush() error {
	for i, o := range w.Objects {
		if err := o.Crush(); err != nil {
			return xerrors.Errorf("while crushing object %d: %w", i, err)
		}
	}
	glog.V(2).Infof("Crushed %d objects", len(w.Objects))
	return nil
}

// Intersect returns every contact of r with every object, ordered by time.
// Ties keep the order each object returned them in, then insertion order.
func (w *World) Intersect(r ray.Ray) ([]contact.Contact, error) {
	all := []contact.Contact{}
	for i, o := range w.Objects {
		hits, err := o.Intersect(r)
		if err != nil {
			return nil, xerrors.Errorf("while intersecting object %d: %w", i, err)
		}
		all = append(all, hits...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Time < all[j].Time
	})
	return all, nil
}

// ColorAt shades the first contact along r, including contacts behind the
// ray origin, or returns black if there is none.  There are no shadows.
func (w *World) ColorAt(r ray.Ray) (color.Color, error) {
	hits, err := w.Intersect(r)
	if err != nil {
		return color.Black, err
	}
	if len(hits) == 0 {
		return color.Black, nil
	}
	return shading.ShadeContact(hits[0], w.Light), nil
}
