package field

import "testing"

func TestEnumBidirectional(t *testing.T) {
	e := NewEnum().Set("A", 1).Set("B", 2)

	if name, ok := e.Name(1); !ok || name != "A" {
		t.Errorf("Name(1): got %q, %v", name, ok)
	}
	if val, ok := e.Value("A"); !ok || val != 1 {
		t.Errorf("Value(A): got %d, %v", val, ok)
	}

	// round trip both directions
	name, _ := e.Name(2)
	if val, _ := e.Value(name); val != 2 {
		t.Errorf("round trip 2 -> %q -> %d", name, val)
	}
	val, _ := e.Value("B")
	if name, _ := e.Name(val); name != "B" {
		t.Errorf("round trip B -> %d -> %q", val, name)
	}
}

func TestEnumMissing(t *testing.T) {
	e := NewEnum().Set("A", 1)

	if _, ok := e.Name(9); ok {
		t.Error("Name(9): expected miss")
	}
	if _, ok := e.Value("Z"); ok {
		t.Error("Value(Z): expected miss")
	}
}

// Duplicate bindings overwrite silently: last write wins in both
// directions. This is deliberate behavior, not an accident of map use.
func TestEnumDuplicateLastWins(t *testing.T) {
	e := NewEnum().Set("A", 1).Set("A", 2)
	if val, _ := e.Value("A"); val != 2 {
		t.Errorf("rebinding label: got %d, want 2", val)
	}

	e = NewEnum().Set("X", 7).Set("Y", 7)
	if name, _ := e.Name(7); name != "Y" {
		t.Errorf("rebinding value: got %q, want Y", name)
	}
}
