// Package material describes how a surface responds to Phong lighting.
package material

import (
	"math"

	"frog/color"
)

type Material struct {
	Color     color.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// Default is white with ambient 0.1, diffuse 0.9, specular 0.9 and
// shininess 200.
func Default() Material {
	return Material{
		Color:     color.White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

func New(c color.Color, ambient, diffuse, specular, shininess float64) Material {
	return Material{
		Color:     c,
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

func Equal(a, b Material) bool {
	return color.Equal(a.Color, b.Color) &&
		math.Abs(a.Ambient-b.Ambient) < color.Epsilon &&
		math.Abs(a.Diffuse-b.Diffuse) < color.Epsilon &&
		math.Abs(a.Specular-b.Specular) < color.Epsilon &&
		math.Abs(a.Shininess-b.Shininess) < color.Epsilon
}
