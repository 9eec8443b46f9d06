package field

import (
	"bytes"
	"testing"
)

func TestCStrTruncation(t *testing.T) {
	f := NewCStr(4)
	if err := f.SetString("hello world"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if f.Value() != "hell" {
		t.Errorf("truncated value: got %q", f.Value())
	}
	if f.Size() != 4 {
		t.Errorf("size after set: got %d, want 4", f.Size())
	}
}

func TestCStrPadding(t *testing.T) {
	f := NewCStr(8)
	f.SetString("hi")

	b, err := f.encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(b, []byte("hi\x00\x00\x00\x00\x00\x00")) {
		t.Errorf("encode: got %q", b)
	}
}

func TestCStrParseStopsAtNUL(t *testing.T) {
	f := NewCStr(8)
	if _, err := f.parseAt([]byte("ab\x00garbage"), 0, false); err != nil {
		t.Fatalf("parseAt: %v", err)
	}
	if f.Value() != "ab" {
		t.Errorf("value: got %q, want ab", f.Value())
	}
	if f.Size() != 8 {
		t.Errorf("size: got %d, want 8", f.Size())
	}
}

func TestZStrSizeTracksValue(t *testing.T) {
	f := NewZStr()
	if f.Size() != 1 {
		t.Errorf("empty size: got %d, want 1", f.Size())
	}

	f.SetString("hi there")
	if f.Size() != 9 {
		t.Errorf("size after set: got %d, want 9", f.Size())
	}

	b, _ := f.encode()
	if !bytes.Equal(b, []byte("hi there\x00")) {
		t.Errorf("encode: got %q", b)
	}

	f.SetString("")
	if f.Size() != 1 {
		t.Errorf("size after clearing: got %d, want 1", f.Size())
	}
}

func TestZStrEmitAfterAssignment(t *testing.T) {
	s := NewStruct("woot")
	s.Attach("x", NewZStr())
	s.Attach("y", NewUint16())

	s.Set("x", "hi there")
	s.Set("y", 0x4141)

	out, err := s.Emit()
	if err != nil {
		t.Fatalf("Emit: %v", err)
	}
	if !bytes.Equal(out, []byte("hi there\x00AA")) {
		t.Errorf("emit: got %q", out)
	}
}

func TestBytesRejectsOversizedValue(t *testing.T) {
	f := NewBytes(2)
	if err := f.SetBytes([]byte{1, 2, 3}); err == nil {
		t.Error("expected error for value wider than field")
	}
	if err := f.SetBytes([]byte{1}); err != nil {
		t.Errorf("SetBytes: %v", err)
	}

	b, _ := f.encode()
	if !bytes.Equal(b, []byte{1, 0}) {
		t.Errorf("short value emit: got % x", b)
	}
}

func TestBytesOwnedCopy(t *testing.T) {
	src := []byte{1, 2}
	f := NewBytes(2)
	f.SetBytes(src)
	src[0] = 9
	if v := f.Value(); v[0] != 1 {
		t.Error("field value aliases caller slice")
	}
}
