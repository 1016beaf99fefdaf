package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/motion"
	"github.com/milk9111/scenelabel/prefabs"
)

// NewTracked creates the cube the label follows.
func NewTracked(w *ecs.World, spec prefabs.TrackedSpec) (ecs.Entity, error) {
	tracked := ecs.CreateEntity(w)
	if err := ecs.Add(w, tracked, component.TrackedTagComponent.Kind(), &component.TrackedTag{}); err != nil {
		return 0, fmt.Errorf("tracked: add tag: %w", err)
	}

	transform := component.NewTransform(spec.Position.Vec())
	if err := ecs.Add(w, tracked, component.TransformComponent.Kind(), &transform); err != nil {
		return 0, fmt.Errorf("tracked: add transform: %w", err)
	}

	if err := ecs.Add(w, tracked, component.MeshComponent.Kind(), &component.Mesh{
		Size:  spec.Mesh.Size,
		Color: spec.Mesh.Color.Or(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
	}); err != nil {
		return 0, fmt.Errorf("tracked: add mesh: %w", err)
	}

	if err := ecs.Add(w, tracked, component.MotionComponent.Kind(), &component.Motion{Last: transform.Translation}); err != nil {
		return 0, fmt.Errorf("tracked: add motion: %w", err)
	}

	return tracked, nil
}

// NewDriver builds the motion driver a spec asks for: the named tengo script
// when set, otherwise a Lissajous path.
func NewDriver(spec prefabs.MotionSpec) (motion.Driver, error) {
	if spec.Script != "" {
		src, err := prefabs.LoadScript(spec.Script)
		if err != nil {
			return nil, fmt.Errorf("motion: load script %s: %w", spec.Script, err)
		}
		script, err := motion.NewScript(spec.Script, src)
		if err != nil {
			return nil, err
		}
		return script, nil
	}
	return motion.Lissajous{
		Amplitude: spec.Amplitude.Vec(),
		Frequency: spec.Frequency.Vec(),
		Phase:     spec.Phase.Vec(),
	}, nil
}
