package system

import (
	"log"

	"github.com/milk9111/scenelabel/ecs"
	"github.com/milk9111/scenelabel/ecs/component"
	"github.com/milk9111/scenelabel/motion"
)

// MotionSystem overwrites the target's translation with the driver's
// position for the current elapsed time. Rotation and scale are untouched.
type MotionSystem struct {
	target  ecs.Entity
	driver  motion.Driver
	lastErr string
}

func NewMotionSystem(target ecs.Entity, driver motion.Driver) *MotionSystem {
	return &MotionSystem{target: target, driver: driver}
}

// SetDriver swaps the driver, e.g. after a script reload.
func (s *MotionSystem) SetDriver(driver motion.Driver) {
	s.driver = driver
	s.lastErr = ""
}

func (s *MotionSystem) Update(w *ecs.World) {
	if w == nil || s.driver == nil {
		return
	}

	t, ok := ecs.Get(w, s.target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	pos, err := s.driver.Position(w.Frame().Elapsed)
	if err != nil {
		// keep last frame's position; log each distinct failure once
		if msg := err.Error(); msg != s.lastErr {
			log.Printf("motion: entity=%s: %v", s.target, err)
			s.lastErr = msg
		}
		return
	}
	s.lastErr = ""

	t.Translation = pos
	if m, ok := ecs.Get(w, s.target, component.MotionComponent.Kind()); ok {
		m.Last = pos
	}
}
