package field

import (
	"strings"
	"testing"
)

func TestDump(t *testing.T) {
	sub := NewStruct("inner")
	sub.Attach("flag", NewUint8())

	s := NewStruct("header")
	s.Attach("magic", NewUint32())
	s.Attach("name", NewCStr(4))
	s.Attach("sub", sub)

	s.Set("magic", 0x1234)
	s.Set("name", "ab")
	sub.Set("flag", 1)

	var b strings.Builder
	if err := s.Dump(&b, 0x400000); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	out := b.String()

	wantLines := []string{
		"00400000: header",
		"00400000:   uint32 magic = 4660 (0x34120000)",
		"00400004:   cstr name = ab (\"ab\")",
		"00400008:   inner sub",
		"00400008:     uint8 flag = 1 (0x01)",
	}
	got := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(got) != len(wantLines) {
		t.Fatalf("line count: got %d, want %d\n%s", len(got), len(wantLines), out)
	}
	for i, want := range wantLines {
		if got[i] != want {
			t.Errorf("line %d:\n  got  %q\n  want %q", i, got[i], want)
		}
	}
}

func TestStringUsesDump(t *testing.T) {
	s := NewStruct("woot")
	s.Attach("n", NewUint8())
	if !strings.Contains(s.String(), "uint8 n") {
		t.Errorf("String: got %q", s.String())
	}
}
