package field

import (
	"bytes"
	"testing"
)

func TestArrayIndexNaming(t *testing.T) {
	a := NewArray()
	for range 3 {
		if err := a.AddElement(NewUint8()); err != nil {
			t.Fatalf("AddElement: %v", err)
		}
	}

	got := a.Names()
	want := []string{"0", "1", "2"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names[%d]: got %q, want %q", i, got[i], want[i])
		}
	}
	if a.Len() != 3 {
		t.Errorf("Len: got %d, want 3", a.Len())
	}
}

func TestArrayAddElements(t *testing.T) {
	a := NewArray()
	if err := a.AddElements(4, func() Field { return NewUint16() }); err != nil {
		t.Fatalf("AddElements: %v", err)
	}
	if a.Size() != 8 {
		t.Errorf("Size: got %d, want 8", a.Size())
	}
}

func TestMakeArrayParse(t *testing.T) {
	a := MakeArray(3, func() Field { return NewUint16() })

	buf := []byte{0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	if _, err := a.Parse(buf, 0, false); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	for i, want := range []uint64{1, 2, 3} {
		f, err := a.Index(i)
		if err != nil {
			t.Fatalf("Index %d: %v", i, err)
		}
		if got := f.(*Int).Uint(); got != want {
			t.Errorf("element %d: got %d, want %d", i, got, want)
		}
	}

	out, err := a.Emit()
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !bytes.Equal(out, buf) {
		t.Errorf("round trip: got % x", out)
	}
}

func TestArrayNestedInStruct(t *testing.T) {
	s := NewStruct("pkt")
	s.Attach("count", NewUint8())
	s.Attach("items", MakeArray(2, func() Field { return NewUint8() }))

	buf := []byte{0x02, 0xaa, 0xbb}
	if _, err := s.Parse(buf, 0, false); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Size() != 3 {
		t.Errorf("Size: got %d, want 3", s.Size())
	}

	items, err := s.GetStruct("items")
	if err != nil {
		t.Fatalf("GetStruct: %v", err)
	}
	if v, _ := items.Uint("1"); v != 0xbb {
		t.Errorf("items[1]: got %#x", v)
	}
}
