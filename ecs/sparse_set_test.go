package ecs

import "testing"

func TestComponentStoreRemoveKeepsDenseOrder(t *testing.T) {
	s := &componentStore{}
	for id := entityID(1); id <= 4; id++ {
		s.set(id, int(id)*10)
	}

	if !s.remove(2) {
		t.Fatal("expected remove to report true")
	}
	if s.remove(2) {
		t.Fatal("second remove should report false")
	}

	want := []entityID{1, 4, 3}
	got := s.snapshot()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if v, ok := s.get(4); !ok || v.(int) != 40 {
		t.Fatalf("moved entry lost its value: %v ok=%v", v, ok)
	}
	if _, ok := s.get(2); ok {
		t.Fatal("removed id still present")
	}
}

func TestComponentStoreIgnoresZeroID(t *testing.T) {
	s := &componentStore{}
	s.set(0, 1)
	if s.has(0) || len(s.snapshot()) != 0 {
		t.Fatal("id 0 must never be stored")
	}
}

func TestIntersect(t *testing.T) {
	a, b := &componentStore{}, &componentStore{}
	for _, id := range []entityID{1, 2, 3, 5} {
		a.set(id, true)
	}
	for _, id := range []entityID{2, 5, 7} {
		b.set(id, true)
	}

	got := map[entityID]bool{}
	for _, id := range intersect(a, b) {
		got[id] = true
	}
	if len(got) != 2 || !got[2] || !got[5] {
		t.Fatalf("expected {2, 5}, got %v", got)
	}
	if intersect(a, nil) != nil {
		t.Fatal("expected nil for a missing store")
	}
}
