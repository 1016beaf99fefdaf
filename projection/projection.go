// Package projection maps world-space points to viewport pixels.
//
// Depth convention: matrices built by Perspective are right-handed, the camera
// looks down -Z and NDC depth runs from 0 at the near plane to 1 at the far
// plane. Points that land outside [0, 1] are off-screen. A projection that
// maps depth to [-1, 1] (the OpenGL convention, mgl64.Perspective) does not
// work with this test.
package projection

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Size is a viewport extent in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Aspect returns Width/Height, or 1 for a degenerate size.
func (s Size) Aspect() float64 {
	if s.Width <= 0 || s.Height <= 0 {
		return 1
	}
	return s.Width / s.Height
}

// Perspective builds a right-handed projection with [0, 1] depth.
func Perspective(fovY, aspect, near, far float64) mgl64.Mat4 {
	f := 1 / math.Tan(fovY/2)
	r := far / (near - far)
	// column-major
	return mgl64.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, r, -1,
		0, 0, r * near, 0,
	}
}

// ToNDC transforms point by worldToNDC including the perspective divide.
// ok is false when the homogeneous w is zero.
func ToNDC(point mgl64.Vec3, worldToNDC mgl64.Mat4) (ndc mgl64.Vec3, ok bool) {
	clip := worldToNDC.Mul4x1(point.Vec4(1))
	if clip.W() == 0 {
		return mgl64.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip.W()), true
}

// Project maps a world point to pixel coordinates measured from the
// bottom-left corner of a viewport of the given size. The second result is
// false when the point is behind the camera or past the far plane.
func Project(point mgl64.Vec3, proj, cameraWorld mgl64.Mat4, size Size) (mgl64.Vec2, bool) {
	worldToNDC := proj.Mul4(cameraWorld.Inv())
	ndc, ok := ToNDC(point, worldToNDC)
	if !ok {
		return mgl64.Vec2{}, false
	}
	if ndc.Z() < 0 || ndc.Z() > 1 {
		return mgl64.Vec2{}, false
	}
	return mgl64.Vec2{
		(ndc.X() + 1) / 2 * size.Width,
		(ndc.Y() + 1) / 2 * size.Height,
	}, true
}

// WorldToScreen is Project with the viewport size resolved through viewports.
// An unregistered viewport is reported as off-screen.
func WorldToScreen(point mgl64.Vec3, proj, cameraWorld mgl64.Mat4, id ViewportID, viewports ViewportLookup) (mgl64.Vec2, bool) {
	if viewports == nil {
		return mgl64.Vec2{}, false
	}
	size, ok := viewports.Size(id)
	if !ok {
		return mgl64.Vec2{}, false
	}
	return Project(point, proj, cameraWorld, size)
}
