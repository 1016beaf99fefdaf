package component

import "image/color"

// Label is a screen-space text element anchored to a world position.
// Left and Bottom are pixel offsets from the viewport's bottom-left corner.
// Width and Height are written by the text layout pass and stay zero until it
// has measured the text once.
type Label struct {
	Text     string
	FontSize float64
	Color    color.RGBA

	Left    float64
	Bottom  float64
	Width   float64
	Height  float64
	Visible bool
}

var LabelComponent = NewComponent[Label]()
