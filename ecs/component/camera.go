package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scenelabel/projection"
)

// Camera3D holds the intrinsic half of a camera pose. The extrinsic half is
// the Transform on the same entity.
type Camera3D struct {
	FovY       float64 // radians
	Near       float64
	Far        float64
	Viewport   projection.ViewportID
	Projection mgl64.Mat4
}

var Camera3DComponent = NewComponent[Camera3D]()

// FlyCamera configures free-fly control of a camera entity.
type FlyCamera struct {
	Enabled     bool
	Speed       float64 // world units per second
	Sensitivity float64 // radians per pixel of mouse motion
	Yaw         float64
	Pitch       float64
}

var FlyCameraComponent = NewComponent[FlyCamera]()

const maxFlyPitch = 89 * math.Pi / 180

// Orientation is the camera rotation for the current yaw and pitch, with no roll.
func (f FlyCamera) Orientation() mgl64.Quat {
	yaw := mgl64.QuatRotate(f.Yaw, mgl64.Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(f.Pitch, mgl64.Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// Look turns the camera by a yaw and pitch delta; pitch stays short of straight up or down.
func (f *FlyCamera) Look(dYaw, dPitch float64) {
	f.Yaw += dYaw
	f.Pitch = mgl64.Clamp(f.Pitch+dPitch, -maxFlyPitch, maxFlyPitch)
}

// FlyAngles recovers yaw and pitch from a forward direction so a fly camera
// can take over an existing pose without snapping.
func FlyAngles(forward mgl64.Vec3) (yaw, pitch float64) {
	f := forward.Normalize()
	return math.Atan2(-f.X(), -f.Z()), math.Asin(mgl64.Clamp(f.Y(), -1, 1))
}
