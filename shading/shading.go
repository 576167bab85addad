// Package shading evaluates the Phong reflection model.
package shading

import (
	"math"

	"frog/color"
	"frog/contact"
	"frog/light"
	"frog/material"
	"frog/vmath/tuple"
)

// Phong returns ambient + diffuse + specular for a single light.  The result
// is not clamped.
func Phong(m material.Material, l light.Light, point, eyev, normalv tuple.T) color.Color {
	effective := color.MulCC(m.Color, l.Intensity)
	ambient := color.MulCS(effective, m.Ambient)

	lightv := tuple.Normalize(tuple.SubTT(l.Location, point))
	lightDotNormal := tuple.IProd(lightv, normalv)
	if lightDotNormal < 0 {
		// Light is behind the surface.
		return ambient
	}

	diffuse := color.MulCS(effective, m.Diffuse*lightDotNormal)

	reflectv := tuple.Reflect(tuple.Neg(lightv), normalv)
	reflectDotEye := tuple.IProd(reflectv, tuple.Normalize(eyev))
	if reflectDotEye <= 0 {
		return color.Add(ambient, diffuse)
	}

	factor := math.Pow(reflectDotEye, m.Shininess)
	specular := color.MulCS(l.Intensity, m.Specular*factor)

	return color.Add(color.Add(ambient, diffuse), specular)
}

// ShadeContact lights a contact with l, using the material of the shape it
// struck.
func ShadeContact(c contact.Contact, l light.Light) color.Color {
	return Phong(c.Shape.Material(), l, c.Location, c.EyeV, c.NormalV)
}
