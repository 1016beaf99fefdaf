package component

import "github.com/go-gl/mathgl/mgl64"

// Motion marks an entity whose translation is driven from elapsed time.
// Last holds the most recent driven position.
type Motion struct {
	Last mgl64.Vec3
}

var MotionComponent = NewComponent[Motion]()
