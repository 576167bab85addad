// Package ppm writes canvases as ASCII portable pixmaps (P3).
package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"frog/canvas"

	"golang.org/x/xerrors"
)

// Encode writes the header "P3\n<width> <height>\n255\n" and then one
// "r g b\n" line per pixel, row-major from the top left.
func Encode(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return xerrors.Errorf("while writing header: %w", err)
	}

	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			col, err := c.Get(x, y)
			if err != nil {
				return xerrors.Errorf("while reading pixel: %w", err)
			}
			r, g, b := col.ScaleTo255()
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
				return xerrors.Errorf("while writing pixel (%d, %d): %w", x, y, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return xerrors.Errorf("while flushing: %w", err)
	}
	return nil
}

func WriteFile(name string, c *canvas.Canvas) error {
	f, err := os.Create(name)
	if err != nil {
		return xerrors.Errorf("while creating output file: %w", err)
	}

	if err := Encode(f, c); err != nil {
		f.Close()
		return xerrors.Errorf("while encoding %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return xerrors.Errorf("while closing output file: %w", err)
	}
	return nil
}
