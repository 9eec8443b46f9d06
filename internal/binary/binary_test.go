package binary

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReaderReadByte(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}
	r := NewReader(bytes.NewReader(data))

	for i, want := range data {
		if r.Position() != i {
			t.Errorf("position before read %d: got %d, want %d", i, r.Position(), i)
		}
		b, err := r.ReadByte()
		if err != nil {
			t.Fatalf("ReadByte %d: %v", i, err)
		}
		if b != want {
			t.Errorf("ReadByte %d: got 0x%02x, want 0x%02x", i, b, want)
		}
	}

	_, err := r.ReadByte()
	if !errors.Is(err, io.EOF) {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestReaderReadBytes(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05}
	r := NewReader(bytes.NewReader(data))

	got, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if !bytes.Equal(got, []byte{0x01, 0x02, 0x03}) {
		t.Errorf("ReadBytes: got %v, want [1 2 3]", got)
	}

	if r.Position() != 3 {
		t.Errorf("position: got %d, want 3", r.Position())
	}

	_, err = r.ReadBytes(10)
	if err == nil {
		t.Error("expected error for reading past EOF")
	}
}

func TestUintDecode(t *testing.T) {
	tests := []struct {
		name    string
		encoded []byte
		order   ByteOrder
		want    uint64
	}{
		{"u8", []byte{0x7f}, LittleEndian, 0x7f},
		{"u16 le", []byte{0x34, 0x12}, LittleEndian, 0x1234},
		{"u16 be", []byte{0x12, 0x34}, BigEndian, 0x1234},
		{"u32 le", []byte{0x78, 0x56, 0x34, 0x12}, LittleEndian, 0x12345678},
		{"u32 be", []byte{0x12, 0x34, 0x56, 0x78}, BigEndian, 0x12345678},
		{"u64 le", []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}, LittleEndian, 0x0123456789abcdef},
		{"u64 be", []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, BigEndian, 0x0123456789abcdef},
		{"odd width le", []byte{0x01, 0x02, 0x03}, LittleEndian, 0x030201},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Uint(tt.encoded, tt.order); got != tt.want {
				t.Errorf("Uint: got 0x%x, want 0x%x", got, tt.want)
			}
		})
	}
}

func TestReaderReadUntil(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("hello\x00rest")))

	got, err := r.ReadUntil(0)
	if err != nil {
		t.Fatalf("ReadUntil: %v", err)
	}
	if string(got) != "hello" {
		t.Errorf("ReadUntil: got %q, want %q", got, "hello")
	}
	if r.Position() != 6 {
		t.Errorf("position: got %d, want 6", r.Position())
	}
}

func TestReaderReadUntilMissingTerminator(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte("no terminator")))

	_, err := r.ReadUntil(0)
	if !errors.Is(err, ErrNoTerminator) {
		t.Errorf("expected ErrNoTerminator, got %v", err)
	}
}

func TestUintPutUintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0x7f, 0x80, 0xff, 0x1234, 0xfffe, 0x12345678, 0xdeadbeefcafef00d}

	for _, order := range []ByteOrder{LittleEndian, BigEndian} {
		for _, v := range values {
			for size := 1; size <= 8; size++ {
				mask := ^uint64(0)
				if size < 8 {
					mask = 1<<(8*size) - 1
				}
				enc := PutUint(v, size, order)
				if len(enc) != size {
					t.Fatalf("PutUint(%#x, %d): length %d", v, size, len(enc))
				}
				if got := Uint(enc, order); got != v&mask {
					t.Errorf("round trip %#x size %d order %v: got %#x, want %#x", v, size, order, got, v&mask)
				}
			}
		}
	}
}

func TestReadAt(t *testing.T) {
	r := bytes.NewReader([]byte{0xaa, 0xbb, 0xcc, 0xdd})

	got, err := ReadAt(r, 1, 2)
	if err != nil {
		t.Fatalf("ReadAt: %v", err)
	}
	if !bytes.Equal(got, []byte{0xbb, 0xcc}) {
		t.Errorf("ReadAt: got %v", got)
	}

	_, err = ReadAt(r, 3, 4)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestScanAt(t *testing.T) {
	r := bytes.NewReader([]byte("skip\x00me\x00"))

	got, err := ScanAt(r, 5, 0)
	if err != nil {
		t.Fatalf("ScanAt: %v", err)
	}
	if string(got) != "me" {
		t.Errorf("ScanAt: got %q, want %q", got, "me")
	}

	_, err = ScanAt(bytes.NewReader([]byte("nope")), 0, 0)
	if !errors.Is(err, ErrNoTerminator) {
		t.Errorf("expected ErrNoTerminator, got %v", err)
	}
}

func TestWriterPutBytes(t *testing.T) {
	w := NewWriter(4)

	if err := w.PutBytes(1, []byte{0xaa, 0xbb}); err != nil {
		t.Fatalf("PutBytes: %v", err)
	}
	if !bytes.Equal(w.Bytes(), []byte{0x00, 0xaa, 0xbb, 0x00}) {
		t.Errorf("Bytes: got %v", w.Bytes())
	}
	if w.Len() != 4 {
		t.Errorf("Len: got %d, want 4", w.Len())
	}

	if err := w.PutBytes(3, []byte{0x01, 0x02}); err == nil {
		t.Error("expected error for write past region end")
	}
	if err := w.PutBytes(-1, []byte{0x01}); err == nil {
		t.Error("expected error for negative offset")
	}
}
