package component

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLookingAtFacesTarget(t *testing.T) {
	cases := []struct {
		name   string
		eye    mgl64.Vec3
		target mgl64.Vec3
	}{
		{"down_negative_z", mgl64.Vec3{0, 0, 8}, mgl64.Vec3{}},
		{"toward_positive_z", mgl64.Vec3{0, 0, -10}, mgl64.Vec3{}},
		{"oblique", mgl64.Vec3{-3, 5, 8}, mgl64.Vec3{}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tr := LookingAt(c.eye, c.target, mgl64.Vec3{0, 1, 0})
			want := c.target.Sub(c.eye).Normalize()
			if !tr.Forward().ApproxEqualThreshold(want, 1e-9) {
				t.Fatalf("forward = %v, want %v", tr.Forward(), want)
			}
			if tr.Translation != c.eye {
				t.Fatalf("translation = %v", tr.Translation)
			}
			origin := tr.Matrix().Mul4x1(mgl64.Vec4{0, 0, 0, 1}).Vec3()
			if !origin.ApproxEqualThreshold(c.eye, 1e-9) {
				t.Fatalf("matrix origin = %v", origin)
			}
		})
	}
}

func TestZeroTransformMatrixIsTranslationOnly(t *testing.T) {
	tr := Transform{Translation: mgl64.Vec3{1, 2, 3}}
	if !tr.Matrix().ApproxEqual(mgl64.Translate3D(1, 2, 3)) {
		t.Fatalf("unexpected matrix %v", tr.Matrix())
	}
}

func TestFlyAnglesRoundTrip(t *testing.T) {
	for _, fwd := range []mgl64.Vec3{
		{0, 0, -1},
		{1, 0, 0},
		{3, -5, -8},
		{-0.2, 0.4, 1},
	} {
		yaw, pitch := FlyAngles(fwd)
		f := FlyCamera{Yaw: yaw, Pitch: pitch}
		got := f.Orientation().Rotate(mgl64.Vec3{0, 0, -1})
		if !got.ApproxEqualThreshold(fwd.Normalize(), 1e-9) {
			t.Fatalf("forward %v: got %v", fwd, got)
		}
	}
}

func TestFlyLookClampsPitch(t *testing.T) {
	var f FlyCamera
	f.Look(0.5, 10)
	if f.Pitch != maxFlyPitch {
		t.Fatalf("pitch = %v, want %v", f.Pitch, maxFlyPitch)
	}
	f.Look(0, -20)
	if f.Pitch != -maxFlyPitch {
		t.Fatalf("pitch = %v, want %v", f.Pitch, -maxFlyPitch)
	}
	if math.Abs(f.Yaw-0.5) > 1e-12 {
		t.Fatalf("yaw = %v", f.Yaw)
	}
}
