package contact

import (
	"errors"
	"testing"

	"frog/material"
	"frog/ray"
	"frog/rterror"
	"frog/vmath/tuple"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// unitBall is a unit sphere at the origin, enough for contact to finish
// itself against.
type unitBall struct{}

func (unitBall) NormalAt(p tuple.T) (tuple.T, error) {
	if err := p.CheckType(tuple.TypePnt); err != nil {
		return tuple.T{}, err
	}
	return tuple.Normalize(tuple.Vec3(p.X, p.Y, p.Z)), nil
}

func (unitBall) Material() material.Material {
	return material.Default()
}

func TestNew(t *testing.T) {
	testCases := []struct {
		desc     string
		r        ray.Ray
		time     float64
		wantLoc  tuple.T
		wantEye  tuple.T
		wantNorm tuple.T
		inside   bool
	}{
		{
			desc:     "outside",
			r:        ray.Ray{Origin: tuple.Point(0, 0, -5), Direction: tuple.Vec3(0, 0, 1)},
			time:     4,
			wantLoc:  tuple.Point(0, 0, -1),
			wantEye:  tuple.Vec3(0, 0, -1),
			wantNorm: tuple.Vec3(0, 0, -1),
			inside:   false,
		},
		{
			desc:     "inside",
			r:        ray.Ray{Origin: tuple.Point(0, 0, 0), Direction: tuple.Vec3(0, 0, 1)},
			time:     1,
			wantLoc:  tuple.Point(0, 0, 1),
			wantEye:  tuple.Vec3(0, 0, -1),
			wantNorm: tuple.Vec3(0, 0, -1),
			inside:   true,
		},
	}

	approx := cmpopts.EquateApprox(0, tuple.Epsilon)
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got, err := New(tc.time, tc.r.Position(tc.time), unitBall{}, tc.r)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			want := Contact{
				Time:     tc.time,
				Location: tc.wantLoc,
				Shape:    unitBall{},
				Inside:   tc.inside,
				Ray:      tc.r,
				EyeV:     tc.wantEye,
				NormalV:  tc.wantNorm,
			}
			if diff := cmp.Diff(got, want, approx); diff != "" {
				t.Errorf("Bad contact; diff (-got +want)\n%s", diff)
			}
		})
	}
}

func TestNewPropagatesNormalError(t *testing.T) {
	r := ray.Ray{Origin: tuple.Point(0, 0, -5), Direction: tuple.Vec3(0, 0, 1)}
	_, err := New(4, tuple.Vec3(0, 0, -1), unitBall{}, r)
	if !errors.Is(err, rterror.ErrType) {
		t.Errorf("Got err %v, want type error", err)
	}
}
