package component

import "image/color"

// Mesh is an axis-aligned cube of edge Size centered on the entity origin.
type Mesh struct {
	Size  float64
	Color color.RGBA
}

var MeshComponent = NewComponent[Mesh]()

type PointLight struct {
	Color     color.RGBA
	Intensity float64
	Ambient   float64
}

var PointLightComponent = NewComponent[PointLight]()
