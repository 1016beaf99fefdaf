package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/prefabs"
)

// NewLabel creates the follow label. It is not visible until the first layout
// pass places it.
func NewLabel(w *ecs.World, spec prefabs.LabelSpec) (ecs.Entity, error) {
	label := ecs.CreateEntity(w)
	if err := ecs.Add(w, label, component.FollowTextTagComponent.Kind(), &component.FollowTextTag{}); err != nil {
		return 0, fmt.Errorf("label: add tag: %w", err)
	}

	l := &component.Label{}
	ApplyLabelSpec(l, spec)
	if err := ecs.Add(w, label, component.LabelComponent.Kind(), l); err != nil {
		return 0, fmt.Errorf("label: add label: %w", err)
	}
	return label, nil
}

// ApplyLabelSpec copies text and style from spec. Layout fields are kept.
func ApplyLabelSpec(l *component.Label, spec prefabs.LabelSpec) {
	if l.Text != spec.Text || l.FontSize != spec.FontSize {
		// size is stale until the next measurement
		l.Width, l.Height = 0, 0
	}
	l.Text = spec.Text
	l.FontSize = spec.FontSize
	l.Color = spec.Color.Or(color.RGBA{R: 255, G: 255, B: 255, A: 255})
}
