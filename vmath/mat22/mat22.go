// Package mat22 is the 2x2 base case of the cofactor determinant recursion.
package mat22

import "math"

// Epsilon is the component-wise tolerance used by Equal.
const Epsilon = 0.0001

// T is row-major: m[r][c].
type T [2][2]float64

var Identity = T{
	{1, 0},
	{0, 1},
}

func MulMM(a, b T) T {
	result := T{}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				result[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return result
}

func Transpose(m T) T {
	return T{
		{m[0][0], m[1][0]},
		{m[0][1], m[1][1]},
	}
}

func Determinant(m T) float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

func Invertible(m T) bool {
	return Determinant(m) != 0
}

func Equal(a, b T) bool {
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			if math.Abs(a[r][c]-b[r][c]) > Epsilon {
				return false
			}
		}
	}
	return true
}
