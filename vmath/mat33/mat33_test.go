package mat33

import (
	"errors"
	"fmt"
	"testing"

	"frog/rterror"
	"frog/vmath/mat22"
)

func TestSubmatrix(t *testing.T) {
	m := T{
		{9, 8, 0},
		{1, 8, 5},
		{0, 0, 5},
	}

	got, err := Submatrix(m, 2, 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if want := (mat22.T{{9, 0}, {1, 5}}); !mat22.Equal(got, want) {
		t.Errorf("Bad submatrix; got %v, want %v", got, want)
	}
}

func TestSubmatrixOutOfRange(t *testing.T) {
	for _, rc := range [][2]int{{3, 0}, {0, 3}, {-1, 0}, {0, -1}} {
		t.Run(fmt.Sprintf("%v", rc), func(t *testing.T) {
			if _, err := Submatrix(Identity, rc[0], rc[1]); !errors.Is(err, rterror.ErrIndex) {
				t.Errorf("Got err %v, want index error", err)
			}
			if _, err := Cofactor(Identity, rc[0], rc[1]); !errors.Is(err, rterror.ErrIndex) {
				t.Errorf("Cofactor got err %v, want index error", err)
			}
		})
	}
}

func TestMinorAndCofactor(t *testing.T) {
	m := T{
		{3, 5, 0},
		{2, -1, -7},
		{6, -1, 5},
	}

	minor, err := Minor(m, 1, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if minor != 25 {
		t.Errorf("Bad minor(1, 0); got %v, want 25", minor)
	}

	testCases := []struct {
		r, c int
		want float64
	}{
		{0, 0, -12},
		{1, 0, -25},
	}
	for _, tc := range testCases {
		got, err := Cofactor(m, tc.r, tc.c)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != tc.want {
			t.Errorf("Bad cofactor(%d, %d); got %v, want %v", tc.r, tc.c, got, tc.want)
		}
	}
}

func TestDeterminant(t *testing.T) {
	m := T{
		{1, 2, 6},
		{-5, 8, -4},
		{2, 6, 4},
	}

	wantCofactors := []float64{56, 12, -46}
	for c, want := range wantCofactors {
		got, err := Cofactor(m, 0, c)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("Bad cofactor(0, %d); got %v, want %v", c, got, want)
		}
	}

	if got := Determinant(m); got != -196 {
		t.Errorf("Bad determinant; got %v, want -196", got)
	}
	if !Invertible(m) {
		t.Errorf("Matrix with determinant -196 reported singular")
	}
}

// The sign of every cofactor follows the parity of r+c, for every position.
// Positions (1, 1) and (2, 0) are the ones a row-major "r*3 + c" parity test
// would get wrong.
func TestCofactorSignParity(t *testing.T) {
	m := T{
		{3, 5, 0},
		{2, -1, -7},
		{6, -1, 5},
	}

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			minor, err := Minor(m, r, c)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			cof, err := Cofactor(m, r, c)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			want := minor
			if (r+c)%2 == 1 {
				want = -minor
			}
			if cof != want {
				t.Errorf("cofactor(%d, %d) = %v, want %v (minor %v)", r, c, cof, want, minor)
			}
		}
	}

	// minor(1, 1) = 3*5 - 0*6 = 15, minor(2, 0) = 5*-7 - 0*-1 = -35.
	if cof, _ := Cofactor(m, 1, 1); cof != 15 {
		t.Errorf("cofactor(1, 1) = %v, want 15", cof)
	}
	if cof, _ := Cofactor(m, 2, 0); cof != -35 {
		t.Errorf("cofactor(2, 0) = %v, want -35", cof)
	}
}

func TestMulAndTranspose(t *testing.T) {
	m := T{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	if got := MulMM(Identity, m); !Equal(got, m) {
		t.Errorf("I * m = %v, want %v", got, m)
	}
	want := T{
		{1, 4, 7},
		{2, 5, 8},
		{3, 6, 9},
	}
	if got := Transpose(m); !Equal(got, want) {
		t.Errorf("Bad transpose; got %v, want %v", got, want)
	}
}
