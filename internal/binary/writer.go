package binary

import (
	"encoding/binary"
	"fmt"
)

// ByteOrder selects integer byte order for fixed-width codecs.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// Uint decodes a fixed-width unsigned integer from b. Widths from 1 to 8
// bytes are supported; b is consumed in full.
func Uint(b []byte, order ByteOrder) uint64 {
	var v uint64
	if order == BigEndian {
		for _, c := range b {
			v = v<<8 | uint64(c)
		}
		return v
	}
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// PutUint encodes v into exactly size bytes in the given byte order.
// Bits beyond size*8 are discarded.
func PutUint(v uint64, size int, order ByteOrder) []byte {
	var full [8]byte
	binary.LittleEndian.PutUint64(full[:], v)
	out := make([]byte, size)
	copy(out, full[:size])
	if order == BigEndian {
		for i, j := 0, size-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

// Writer is a fixed-size output region with offset-addressed writes, used
// for emitting a walked layout where every field knows its own offset.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer over a zeroed region of the given length.
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, size)}
}

// Bytes returns the underlying region.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the region length.
func (w *Writer) Len() int {
	return len(w.buf)
}

// PutBytes writes data at the given offset. The write must fit inside the
// region.
func (w *Writer) PutBytes(off int, data []byte) error {
	if off < 0 || off+len(data) > len(w.buf) {
		return fmt.Errorf("write of %d bytes at offset %d exceeds region of %d", len(data), off, len(w.buf))
	}
	copy(w.buf[off:], data)
	return nil
}
