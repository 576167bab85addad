package mat33

import (
	"math"

	"frog/rterror"
	"frog/vmath/mat22"
)

// Epsilon is the component-wise tolerance used by Equal.
const Epsilon = 0.0001

// T is row-major: m[r][c].
type T [3][3]float64

var Identity = T{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func MulMM(a, b T) T {
	result := T{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				result[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return result
}

func Transpose(m T) T {
	transpose := T{}
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			transpose[c][r] = m[r][c]
		}
	}
	return transpose
}

// Submatrix deletes row r and column c.
func Submatrix(m T, r, c int) (mat22.T, error) {
	if r < 0 || r >= 3 || c < 0 || c >= 3 {
		return mat22.T{}, rterror.Indexf("submatrix (%d, %d) of a 3x3 matrix", r, c)
	}
	return submatrix(m, r, c), nil
}

func submatrix(m T, r, c int) mat22.T {
	result := mat22.T{}
	dr := 0
	for sr := 0; sr < 3; sr++ {
		if sr == r {
			continue
		}
		dc := 0
		for sc := 0; sc < 3; sc++ {
			if sc == c {
				continue
			}
			result[dr][dc] = m[sr][sc]
			dc++
		}
		dr++
	}
	return result
}

func Minor(m T, r, c int) (float64, error) {
	sub, err := Submatrix(m, r, c)
	if err != nil {
		return 0, err
	}
	return mat22.Determinant(sub), nil
}

// Cofactor is the minor, negated when r+c is odd.
func Cofactor(m T, r, c int) (float64, error) {
	minor, err := Minor(m, r, c)
	if err != nil {
		return 0, err
	}
	return cofactorSign(r, c) * minor, nil
}

func cofactor(m T, r, c int) float64 {
	return cofactorSign(r, c) * mat22.Determinant(submatrix(m, r, c))
}

func cofactorSign(r, c int) float64 {
	if (r+c)%2 != 0 {
		return -1
	}
	return 1
}

// Determinant expands along row 0.
func Determinant(m T) float64 {
	det := 0.0
	for c := 0; c < 3; c++ {
		det += m[0][c] * cofactor(m, 0, c)
	}
	return det
}

func Invertible(m T) bool {
	return Determinant(m) != 0
}

func Equal(a, b T) bool {
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if math.Abs(a[r][c]-b[r][c]) > Epsilon {
				return false
			}
		}
	}
	return true
}
