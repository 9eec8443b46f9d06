package binary

import (
	"bufio"
	"errors"
	"io"
)

// ErrNoTerminator is returned when a terminated read hits EOF before the
// delimiter byte.
var ErrNoTerminator = errors.New("terminator not found")

// Reader wraps an io.ByteReader with position tracking and fixed-width
// read methods.
type Reader struct {
	r   io.ByteReader
	pos int
}

// NewReader creates a new Reader wrapping the given io.ByteReader.
func NewReader(r io.ByteReader) *Reader {
	return &Reader{r: r, pos: 0}
}

// Position returns the current byte position.
func (r *Reader) Position() int {
	return r.pos
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, err
	}
	r.pos++
	return b, nil
}

// ReadBytes reads exactly n bytes.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

// ReadUntil reads bytes up to the first occurrence of delim. The returned
// slice excludes the delimiter; the position advances past it. EOF before
// the delimiter yields ErrNoTerminator.
func (r *Reader) ReadUntil(delim byte) ([]byte, error) {
	var out []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrNoTerminator
			}
			return nil, err
		}
		if b == delim {
			return out, nil
		}
		out = append(out, b)
	}
}

// ReadAt seeks to off and reads exactly n bytes from the stream. A short
// read is reported as io.ErrUnexpectedEOF.
func ReadAt(r io.ReadSeeker, off, n int) ([]byte, error) {
	if _, err := r.Seek(int64(off), io.SeekStart); err != nil {
		return nil, err
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}

// ScanAt seeks to off and reads bytes up to the first occurrence of delim.
// The returned slice excludes the delimiter. EOF before the delimiter
// yields ErrNoTerminator.
func ScanAt(r io.ReadSeeker, off int, delim byte) ([]byte, error) {
	if _, err := r.Seek(int64(off), io.SeekStart); err != nil {
		return nil, err
	}
	return NewReader(bufio.NewReader(r)).ReadUntil(delim)
}
