package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/projection"
)

// HiddenOffset parks a hidden label far outside any viewport.
const HiddenOffset = -10000.0

// LabelPositionSystem centers the label on the tracked entity's projected
// position. When the entity cannot be projected the label is parked at
// HiddenOffset and marked not visible.
type LabelPositionSystem struct {
	tracked   ecs.Entity
	camera    ecs.Entity
	label     ecs.Entity
	viewports projection.ViewportLookup
}

func NewLabelPositionSystem(tracked, camera, label ecs.Entity, viewports projection.ViewportLookup) *LabelPositionSystem {
	return &LabelPositionSystem{
		tracked:   tracked,
		camera:    camera,
		label:     label,
		viewports: viewports,
	}
}

func (s *LabelPositionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	label, ok := ecs.Get(w, s.label, component.LabelComponent.Kind())
	if !ok {
		return
	}

	coord, ok := s.screenPosition(w)
	if !ok {
		hideLabel(label)
		return
	}

	label.Left = coord.X() - label.Width/2
	label.Bottom = coord.Y() - label.Height/2
	label.Visible = true
}

func (s *LabelPositionSystem) screenPosition(w *ecs.World) (mgl64.Vec2, bool) {
	target, ok := ecs.Get(w, s.tracked, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec2{}, false
	}
	cam, ok := ecs.Get(w, s.camera, component.Camera3DComponent.Kind())
	if !ok {
		return mgl64.Vec2{}, false
	}
	camT, ok := ecs.Get(w, s.camera, component.TransformComponent.Kind())
	if !ok {
		return mgl64.Vec2{}, false
	}
	return projection.WorldToScreen(target.Translation, cam.Projection, camT.Matrix(), cam.Viewport, s.viewports)
}

func hideLabel(label *component.Label) {
	label.Left = HiddenOffset
	label.Bottom = HiddenOffset
	label.Visible = false
}
