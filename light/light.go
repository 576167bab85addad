// Package light holds the single point light a world is lit by.
package light

import (
	"frog/color"
	"frog/vmath/tuple"

	"golang.org/x/xerrors"
)

type Light struct {
	Intensity color.Color
	Location  tuple.T
}

func New(intensity color.Color, location tuple.T) (Light, error) {
	if err := location.CheckType(tuple.TypePnt); err != nil {
		return Light{}, xerrors.Errorf("while checking light location: %w", err)
	}
	return Light{Intensity: intensity, Location: location}, nil
}
