package ppm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"frog/canvas"
	"frog/color"

	"github.com/google/go-cmp/cmp"
)

func TestEncode(t *testing.T) {
	c := canvas.New(3, 2)
	pixels := []struct {
		x, y int
		c    color.Color
	}{
		{0, 0, color.New(1.5, 0, 0)},
		{1, 0, color.New(0, 0.5, 0)},
		{2, 0, color.New(-0.5, 0, 1)},
		{0, 1, color.New(1, 1, 1)},
		{2, 1, color.New(0.2, 0.4, 0.6)},
	}
	for _, p := range pixels {
		if err := c.Set(p.x, p.y, p.c); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	buf := &bytes.Buffer{}
	if err := Encode(buf, c); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := "P3\n" +
		"3 2\n" +
		"255\n" +
		"255 0 0\n" +
		"0 127 0\n" +
		"0 0 255\n" +
		"255 255 255\n" +
		"0 0 0\n" +
		"51 102 153\n"
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("Bad PPM; diff (-got +want)\n%s", diff)
	}
}

func TestEncodeEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, canvas.New(0, 0)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(buf.String(), "P3\n0 0\n255\n"); diff != "" {
		t.Errorf("Bad PPM; diff (-got +want)\n%s", diff)
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWrite
}

func TestEncodeWriteError(t *testing.T) {
	if err := Encode(failingWriter{}, canvas.New(1, 1)); !errors.Is(err, errWrite) {
		t.Errorf("Got err %v, want %v", err, errWrite)
	}
}

func TestWriteFile(t *testing.T) {
	c := canvas.New(1, 1)
	if err := c.Set(0, 0, color.White); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	name := filepath.Join(t.TempDir(), "out.ppm")
	if err := WriteFile(name, c); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	got, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diff := cmp.Diff(string(got), "P3\n1 1\n255\n255 255 255\n"); diff != "" {
		t.Errorf("Bad file contents; diff (-got +want)\n%s", diff)
	}
}
