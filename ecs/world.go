package ecs

import "github.com/milk9111/scenelabel/ecs/component"

// Frame is the timing input the host loop hands to the world once per frame.
type Frame struct {
	Index   uint64
	Elapsed float64
	Delta   float64
}

// World owns entities, their component stores and the frame clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*componentStore
	frame    Frame
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*componentStore)}
}

// Advance starts a new frame at the given monotonic elapsed time in seconds.
func (w *World) Advance(elapsed float64) {
	if w == nil {
		return
	}
	w.frame.Index++
	w.frame.Delta = elapsed - w.frame.Elapsed
	if w.frame.Delta < 0 {
		w.frame.Delta = 0
	}
	w.frame.Elapsed = elapsed
}

// Frame returns the current frame timing.
func (w *World) Frame() Frame {
	if w == nil {
		return Frame{}
	}
	return w.frame
}

func (w *World) store(id component.ComponentID, create bool) *componentStore {
	s, ok := w.stores[id]
	if !ok && create {
		s = &componentStore{}
		w.stores[id] = s
	}
	return s
}

func (w *World) addComponent(e Entity, id component.ComponentID, value any) error {
	if id == 0 {
		return component.ErrInvalidComponentKind
	}
	if !w.entities.isAlive(e) {
		return component.ErrEntityNotAlive
	}
	w.store(id, true).set(e.id(), value)
	return nil
}

func (w *World) getComponent(e Entity, id component.ComponentID) (any, bool) {
	if !w.entities.isAlive(e) {
		return nil, false
	}
	return w.store(id, false).get(e.id())
}

func (w *World) removeComponent(e Entity, id component.ComponentID) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	return w.store(id, false).remove(e.id())
}
