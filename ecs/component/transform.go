package component

import "github.com/go-gl/mathgl/mgl64"

// Transform is an entity's world placement. Rotation and Scale are carried
// for rendering; the label pipeline only reads Translation.
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

var TransformComponent = NewComponent[Transform]()

func NewTransform(translation mgl64.Vec3) Transform {
	return Transform{
		Translation: translation,
		Rotation:    mgl64.QuatIdent(),
		Scale:       mgl64.Vec3{1, 1, 1},
	}
}

// LookingAt places a transform at eye with its -Z axis facing target.
func LookingAt(eye, target, up mgl64.Vec3) Transform {
	world := mgl64.LookAtV(eye, target, up).Inv()
	t := NewTransform(eye)
	t.Rotation = mgl64.Mat4ToQuat(world).Normalize()
	return t
}

// Matrix returns the local-to-world matrix T*R*S.
func (t Transform) Matrix() mgl64.Mat4 {
	scale := t.Scale
	if scale == (mgl64.Vec3{}) {
		scale = mgl64.Vec3{1, 1, 1}
	}
	rot := t.Rotation
	if rot.Len() == 0 {
		rot = mgl64.QuatIdent()
	}
	return mgl64.Translate3D(t.Translation.Elem()).
		Mul4(rot.Mat4()).
		Mul4(mgl64.Scale3D(scale.Elem()))
}

// Forward is the world-space direction the transform faces (-Z).
func (t Transform) Forward() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
}

func (t Transform) Right() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{1, 0, 0})
}

func (t Transform) Up() mgl64.Vec3 {
	return t.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
}
