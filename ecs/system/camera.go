package system

import (
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/projection"
)

// CameraProjectionSystem rebuilds the camera's projection matrix from its
// viewport's current aspect ratio. Until the viewport is registered the
// previous matrix is kept.
type CameraProjectionSystem struct {
	camera    ecs.Entity
	viewports projection.ViewportLookup
}

func NewCameraProjectionSystem(camera ecs.Entity, viewports projection.ViewportLookup) *CameraProjectionSystem {
	return &CameraProjectionSystem{camera: camera, viewports: viewports}
}

func (s *CameraProjectionSystem) Update(w *ecs.World) {
	if w == nil || s.viewports == nil {
		return
	}

	cam, ok := ecs.Get(w, s.camera, component.Camera3DComponent.Kind())
	if !ok {
		return
	}

	size, ok := s.viewports.Size(cam.Viewport)
	if !ok {
		return
	}
	cam.Projection = projection.Perspective(cam.FovY, size.Aspect(), cam.Near, cam.Far)
}
