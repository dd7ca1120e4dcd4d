package scene

import "testing"

func TestAddNodeRejectsBadParent(t *testing.T) {
	s := New(nil)
	if _, err := s.AddNode(5, Node{Name: "orphan"}); err == nil {
		t.Error("parent index past the arena should be rejected")
	}
}

func TestAddNodeLinksChildren(t *testing.T) {
	s := New(nil)
	parent := mustAdd(t, s, NoParent, Node{Name: "parent"})
	a := mustAdd(t, s, parent, Node{Name: "a"})
	b := mustAdd(t, s, parent, Node{Name: "b"})

	children := s.Node(parent).Children()
	if len(children) != 2 || children[0] != a || children[1] != b {
		t.Errorf("expected children [%d %d], got %v", a, b, children)
	}
}

func TestSetTargetValidatesIndices(t *testing.T) {
	s := New(nil)
	idx := mustAdd(t, s, NoParent, Node{Name: "n"})

	if err := s.SetTarget(idx, 9); err == nil {
		t.Error("target index past the arena should be rejected")
	}
	if err := s.SetTarget(idx, NoTarget); err != nil {
		t.Errorf("clearing a target should succeed, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	s := New(nil)
	mustAdd(t, s, NoParent, Node{Name: "first"})
	idx := mustAdd(t, s, NoParent, Node{Name: "second"})

	if got := s.Lookup("second"); got != idx {
		t.Errorf("Lookup(second): got %d, want %d", got, idx)
	}
	if got := s.Lookup("missing"); got != -1 {
		t.Errorf("Lookup(missing): got %d, want -1", got)
	}
}

func TestSlotNamesRoundTrip(t *testing.T) {
	for s := Slot(0); s < SlotCount; s++ {
		got, ok := SlotByName(s.String())
		if !ok || got != s {
			t.Errorf("slot %d name %q did not round-trip", s, s.String())
		}
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range []NodeKind{KindObject, KindLight, KindCamera, KindEmitter} {
		got, ok := KindByName(k.String())
		if !ok || got != k {
			t.Errorf("kind %v did not round-trip", k)
		}
	}
}
