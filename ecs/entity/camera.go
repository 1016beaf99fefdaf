package entity

import (
	"fmt"

	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/prefabs"
	"github.com/milk9111/scenelabel/projection"
)

// NewCamera creates the 3D scene camera looking from spec.Eye at spec.Target
// and rendering into viewport.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, viewport projection.ViewportID) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.ThreeDCameraTagComponent.Kind(), &component.ThreeDCameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	transform := component.LookingAt(spec.Eye.Vec(), spec.Target.Vec(), spec.Up.Vec())
	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	// aspect 1 until the viewport reports its size
	if err := ecs.Add(w, camera, component.Camera3DComponent.Kind(), &component.Camera3D{
		FovY:       spec.FovY(),
		Near:       spec.Near,
		Far:        spec.Far,
		Viewport:   viewport,
		Projection: projection.Perspective(spec.FovY(), 1, spec.Near, spec.Far),
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	yaw, pitch := component.FlyAngles(transform.Forward())
	if err := ecs.Add(w, camera, component.FlyCameraComponent.Kind(), &component.FlyCamera{
		Enabled:     spec.Fly.Enabled,
		Speed:       spec.Fly.Speed,
		Sensitivity: spec.Fly.Sensitivity,
		Yaw:         yaw,
		Pitch:       pitch,
	}); err != nil {
		return 0, fmt.Errorf("camera: add fly camera: %w", err)
	}

	if err := ecs.Add(w, camera, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("camera: add input: %w", err)
	}

	return camera, nil
}

// CameraPose reads the camera's current pose back into a spec, looking at a
// point one unit ahead.
func CameraPose(w *ecs.World, camera ecs.Entity, base prefabs.CameraSpec) (prefabs.CameraSpec, bool) {
	t, ok := ecs.Get(w, camera, component.TransformComponent.Kind())
	if !ok {
		return base, false
	}
	out := base
	out.Eye = prefabs.Vec3Spec(t.Translation)
	out.Target = prefabs.Vec3Spec(t.Translation.Add(t.Forward()))
	out.Up = prefabs.Vec3Spec{0, 1, 0}
	if fly, ok := ecs.Get(w, camera, component.FlyCameraComponent.Kind()); ok {
		out.Fly.Enabled = fly.Enabled
	}
	return out, true
}
