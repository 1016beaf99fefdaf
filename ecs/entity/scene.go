package entity

import (
	"fmt"

	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/prefabs"
	"github.com/milk9111/scenelabel/projection"
)

// Scene holds the handles of the single tracked object, camera, label and
// light. Systems receive these explicitly instead of querying by tag.
type Scene struct {
	Tracked ecs.Entity
	Camera  ecs.Entity
	Label   ecs.Entity
	Light   ecs.Entity
}

// BuildScene creates every scene entity from spec.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec, viewport projection.ViewportID) (Scene, error) {
	if spec == nil {
		return Scene{}, fmt.Errorf("scene: nil spec")
	}

	var (
		s   Scene
		err error
	)
	if s.Tracked, err = NewTracked(w, spec.Tracked); err != nil {
		return Scene{}, err
	}
	if s.Camera, err = NewCamera(w, spec.Camera, viewport); err != nil {
		return Scene{}, err
	}
	if s.Label, err = NewLabel(w, spec.Label); err != nil {
		return Scene{}, err
	}
	if s.Light, err = NewLight(w, spec.Light); err != nil {
		return Scene{}, err
	}
	return s, nil
}
