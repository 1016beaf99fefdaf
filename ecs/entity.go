package ecs

import "fmt"

// Entity is a handle to a world slot. The low half is the slot id and the
// high half counts reuses of that slot, so a handle kept past DestroyEntity
// never matches the slot's next occupant. The zero Entity is never issued.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

// String formats e as slot:generation.
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.id(), e.generation())
}
