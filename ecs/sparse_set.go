package ecs

const absent = -1

// componentStore holds one component kind. ids and values are dense and
// share an index; slots maps an entity slot (id-1) to that index.
type componentStore struct {
	ids    []entityID
	values []any
	slots  []int
}

func (s *componentStore) has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.slots) {
		return false
	}
	i := s.slots[id-1]
	return i != absent && s.ids[i] == id
}

func (s *componentStore) get(id entityID) (any, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.values[s.slots[id-1]], true
}

func (s *componentStore) set(id entityID, v any) {
	if id == 0 {
		return
	}
	for int(id) > len(s.slots) {
		s.slots = append(s.slots, absent)
	}
	if s.has(id) {
		s.values[s.slots[id-1]] = v
		return
	}
	s.slots[id-1] = len(s.ids)
	s.ids = append(s.ids, id)
	s.values = append(s.values, v)
}

// remove swaps the last dense entry into the removed one's place.
func (s *componentStore) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	i := s.slots[id-1]
	last := len(s.ids) - 1
	moved := s.ids[last]

	s.ids[i] = moved
	s.values[i] = s.values[last]
	s.slots[moved-1] = i

	s.ids = s.ids[:last]
	s.values[last] = nil
	s.values = s.values[:last]
	s.slots[id-1] = absent
	return true
}

// snapshot copies the dense ids so callers may mutate the store while
// iterating.
func (s *componentStore) snapshot() []entityID {
	if s == nil {
		return nil
	}
	return append([]entityID(nil), s.ids...)
}

// intersect returns the ids present in both stores, walking the smaller one.
func intersect(a, b *componentStore) []entityID {
	if a == nil || b == nil {
		return nil
	}
	if len(a.ids) > len(b.ids) {
		a, b = b, a
	}
	out := make([]entityID, 0, len(a.ids))
	for _, id := range a.ids {
		if b.has(id) {
			out = append(out, id)
		}
	}
	return out
}
