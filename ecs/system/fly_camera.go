package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
)

const flyBoost = 3

// FlyCameraSystem applies the frame's Input to a free-fly camera: mouse look
// sets yaw and pitch, movement follows the camera's own axes with vertical
// motion along world up.
type FlyCameraSystem struct {
	camera ecs.Entity
}

func NewFlyCameraSystem(camera ecs.Entity) *FlyCameraSystem {
	return &FlyCameraSystem{camera: camera}
}

func (s *FlyCameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	fly, ok := ecs.Get(w, s.camera, component.FlyCameraComponent.Kind())
	if !ok || !fly.Enabled {
		return
	}
	t, ok := ecs.Get(w, s.camera, component.TransformComponent.Kind())
	if !ok {
		return
	}
	in, ok := ecs.Get(w, s.camera, component.InputComponent.Kind())
	if !ok {
		return
	}

	fly.Look(-in.LookDX*fly.Sensitivity, -in.LookDY*fly.Sensitivity)
	t.Rotation = fly.Orientation()

	move := t.Right().Mul(in.MoveX).
		Add(mgl64.Vec3{0, 1, 0}.Mul(in.MoveY)).
		Add(t.Forward().Mul(in.MoveZ))
	n := move.Len()
	if n == 0 {
		return
	}
	// clamp to unit length so partial stick tilt keeps its magnitude
	if n > 1 {
		move = move.Mul(1 / n)
	}
	speed := fly.Speed
	if in.Boost {
		speed *= flyBoost
	}
	t.Translation = t.Translation.Add(move.Mul(speed * w.Frame().Delta))
}
