package light

import (
	"errors"
	"testing"

	"frog/color"
	"frog/rterror"
	"frog/vmath/tuple"

	"github.com/google/go-cmp/cmp"
)

func TestNew(t *testing.T) {
	got, err := New(color.White, tuple.Point(0, 0, 0))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	want := Light{Intensity: color.New(1, 1, 1), Location: tuple.Point(0, 0, 0)}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("Bad light; diff (-got +want)\n%s", diff)
	}
}

func TestNewRejectsVectorLocation(t *testing.T) {
	if _, err := New(color.White, tuple.Vec3(0, 0, 0)); !errors.Is(err, rterror.ErrType) {
		t.Errorf("Got err %v, want type error", err)
	}
}
