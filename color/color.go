package color

import "math"

// Epsilon is the per-channel tolerance used by Equal.
const Epsilon = 0.0001

type Color struct {
	Red, Green, Blue float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

func New(r, g, b float64) Color {
	return Color{Red: r, Green: g, Blue: b}
}

func Add(a, b Color) Color {
	return Color{
		a.Red + b.Red,
		a.Green + b.Green,
		a.Blue + b.Blue,
	}
}

func Sub(a, b Color) Color {
	return Color{
		a.Red - b.Red,
		a.Green - b.Green,
		a.Blue - b.Blue,
	}
}

func MulCS(a Color, s float64) Color {
	return Color{
		a.Red * s,
		a.Green * s,
		a.Blue * s,
	}
}

// MulCC is the component-wise (Hadamard) product.
func MulCC(a, b Color) Color {
	return Color{
		a.Red * b.Red,
		a.Green * b.Green,
		a.Blue * b.Blue,
	}
}

func DivCS(a Color, s float64) Color {
	return Color{
		a.Red / s,
		a.Green / s,
		a.Blue / s,
	}
}

func Equal(a, b Color) bool {
	return math.Abs(a.Red-b.Red) < Epsilon &&
		math.Abs(a.Green-b.Green) < Epsilon &&
		math.Abs(a.Blue-b.Blue) < Epsilon
}

// ScaleTo255 maps each channel from [0, 1] onto the integers [0, 255].
// Values above 1 clamp to 255 and values below 0 clamp to 0; everything else
// is floor(v*255).
func (c Color) ScaleTo255() (r, g, b int) {
	return scaleChannel(c.Red), scaleChannel(c.Green), scaleChannel(c.Blue)
}

func scaleChannel(v float64) int {
	if v > 1.0 {
		return 255
	}
	if v < 0.0 {
		return 0
	}
	return int(math.Floor(v * 255))
}
