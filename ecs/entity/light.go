package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/prefabs"
)

func NewLight(w *ecs.World, spec prefabs.LightSpec) (ecs.Entity, error) {
	light := ecs.CreateEntity(w)

	transform := component.NewTransform(spec.Position.Vec())
	if err := ecs.Add(w, light, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("light: add transform: %w", err)
	}

	if err := ecs.Add(w, light, component.PointLightComponent.Kind(), &component.PointLight{
		Color:     spec.Color.Or(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Intensity: spec.Intensity,
		Ambient:   spec.Ambient,
	}); err != nil {
		return 0, fmt.Errorf("light: add point light: %w", err)
	}
	return light, nil
}
