// Package canvas is a bounds-checked grid of colors, stored row-major.
package canvas

import (
	"frog/color"
	"frog/rterror"
)

type Canvas struct {
	Width  int
	Height int

	pixels []color.Color
}

// New returns an all-black canvas.
func New(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]color.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0, rterror.OutOfBoundsf("pixel (%d, %d) outside %dx%d canvas", x, y, c.Width, c.Height)
	}
	return y*c.Width + x, nil
}

func (c *Canvas) Set(x, y int, col color.Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = col
	return nil
}

func (c *Canvas) Get(x, y int) (color.Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return color.Color{}, err
	}
	return c.pixels[i], nil
}

// Rows returns a canvas covering rows [y0, y1) that shares storage with c.
// Row y0 of c is row 0 of the result.  Views of disjoint row ranges may be
// written concurrently.
func (c *Canvas) Rows(y0, y1 int) (*Canvas, error) {
	if y0 < 0 || y1 > c.Height || y0 > y1 {
		return nil, rterror.OutOfBoundsf("rows [%d, %d) outside %dx%d canvas", y0, y1, c.Width, c.Height)
	}
	return &Canvas{
		Width:  c.Width,
		Height: y1 - y0,
		pixels: c.pixels[y0*c.Width : y1*c.Width],
	}, nil
}

// Antialiased returns a box-filtered copy of c.
//
// Each output pixel is the mean of the pixels at offsets (±i, ±j) for i, j
// in [0, r), duplicates included.  Neighbors are range-checked by flat index
// only, so near the left and right edges they wrap onto the adjacent row.
// r < 1 returns an unfiltered copy.
func (c *Canvas) Antialiased(r int) *Canvas {
	out := New(c.Width, c.Height)
	if r < 1 {
		copy(out.pixels, c.pixels)
		return out
	}

	n := len(c.pixels)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			sum := color.Black
			count := 0

			for i := 0; i < r; i++ {
				for j := 0; j < r; j++ {
					for _, l := range [4]int{
						(y+j)*c.Width + (x + i),
						(y+j)*c.Width + (x - i),
						(y-j)*c.Width + (x + i),
						(y-j)*c.Width + (x - i),
					} {
						if l >= 0 && l < n {
							sum = color.Add(sum, c.pixels[l])
							count++
						}
					}
				}
			}

			out.pixels[y*c.Width+x] = color.DivCS(sum, float64(count))
		}
	}

	return out
}
