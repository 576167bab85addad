// Package mat44 holds the 4x4 matrices that carry every transform in the
// renderer.
//
// Matrices are row-major values (m[r][c]) and act on tuples from the left:
// MulMT(m, t) treats t as a column vector.  Inversion is by cofactors: the
// transposed matrix of cofactors divided by the determinant.
package mat44

import (
	"math"

	"frog/rterror"
	"frog/vmath/mat33"
	"frog/vmath/tuple"
)

// Epsilon is the component-wise tolerance used by Equal.
const Epsilon = 0.0001

type T [4][4]float64

var Identity = T{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// Col returns column c as a row.
func Col(m T, c int) [4]float64 {
	return [4]float64{m[0][c], m[1][c], m[2][c], m[3][c]}
}

func MulMM(a, b T) T {
	result := T{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			col := Col(b, c)
			result[r][c] = a[r][0]*col[0] + a[r][1]*col[1] + a[r][2]*col[2] + a[r][3]*col[3]
		}
	}
	return result
}

func MulMT(m T, t tuple.T) tuple.T {
	return tuple.T{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

func Transpose(m T) T {
	return T{Col(m, 0), Col(m, 1), Col(m, 2), Col(m, 3)}
}

// Submatrix deletes row r and column c.
func Submatrix(m T, r, c int) (mat33.T, error) {
	if r < 0 || r >= 4 || c < 0 || c >= 4 {
		return mat33.T{}, rterror.Indexf("submatrix (%d, %d) of a 4x4 matrix", r, c)
	}
	return submatrix(m, r, c), nil
}

func submatrix(m T, r, c int) mat33.T {
	result := mat33.T{}
	dr := 0
	for sr := 0; sr < 4; sr++ {
		if sr == r {
			continue
		}
		dc := 0
		for sc := 0; sc < 4; sc++ {
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
	return mat33.Determinant(sub), nil
}

// Cofactor is the minor, negated when r+c is odd.
func Cofactor(m T, r, c int) (float64, error) {
	minor, err := Minor(m, r, c)
	if err != nil {
		return 0, err
	}
	if (r+c)%2 != 0 {
		return -minor, nil
	}
	return minor, nil
}

func cofactor(m T, r, c int) float64 {
	minor := mat33.Determinant(submatrix(m, r, c))
	if (r+c)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant expands along row 0.
func Determinant(m T) float64 {
	return m[0][0]*cofactor(m, 0, 0) +
		m[0][1]*cofactor(m, 0, 1) +
		m[0][2]*cofactor(m, 0, 2) +
		m[0][3]*cofactor(m, 0, 3)
}

func Invertible(m T) bool {
	return Determinant(m) != 0
}

func MatrixOfCofactors(m T) T {
	result := T{}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] = cofactor(m, r, c)
		}
	}
	return result
}

// Inverse fails with a singular matrix error only when the determinant is
// exactly zero.
func Inverse(m T) (T, error) {
	det := Determinant(m)
	if det == 0 {
		return T{}, rterror.Singularf("matrix %v has determinant 0", m)
	}

	result := Transpose(MatrixOfCofactors(m))
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			result[r][c] /= det
		}
	}
	return result, nil
}

func Equal(a, b T) bool {
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if math.Abs(a[r][c]-b[r][c]) > Epsilon {
				return false
			}
		}
	}
	return true
}
