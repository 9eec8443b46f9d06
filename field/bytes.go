package field

import (
	"fmt"
	"strconv"

	"github.com/wippyai/bytefield"
	"github.com/wippyai/bytefield/errors"
	"github.com/wippyai/bytefield/internal/binary"
)

// Bytes is a fixed-width binary field. Assigned values shorter than the
// declared width emit right-padded with zero bytes.
type Bytes struct {
	prim
	val []byte
}

// NewBytes creates a fixed-width binary field of the given size.
func NewBytes(size int) *Bytes {
	if size < 0 {
		size = 0
	}
	f := &Bytes{}
	f.resize(size)
	return f
}

func (f *Bytes) TypeName() string {
	return "bytes"
}

// Value returns the current bytes. The slice is owned by the field.
func (f *Bytes) Value() []byte {
	return f.val
}

// SetBytes assigns a value. Values longer than the declared width are
// rejected, since the field can never emit more than Size() bytes.
func (f *Bytes) SetBytes(b []byte) error {
	if len(b) > f.size {
		return errors.InvalidValue(errors.PhaseValue, nil, b,
			fmt.Sprintf("%d bytes exceed field width %d", len(b), f.size))
	}
	f.val = append([]byte(nil), b...)
	if err := f.writeBack(f.padded()); err != nil {
		return err
	}
	f.fire()
	return nil
}

func (f *Bytes) parseAt(buf []byte, off int, writeback bool) (int, error) {
	if off < 0 || off+f.size > len(buf) {
		return 0, errors.BufferUnderrun(errors.PhaseParse, nil, f.size, max(len(buf)-off, 0))
	}
	f.val = append([]byte(nil), buf[off:off+f.size]...)
	f.record(buf, nil, off, writeback)
	f.fire()
	return f.size, nil
}

func (f *Bytes) loadAt(r bytefield.SeekReader, off int, writeback bool) (int, error) {
	b, err := binary.ReadAt(r, off, f.size)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseLoad, errors.KindBufferUnderrun, err,
			fmt.Sprintf("read %d bytes at offset %d", f.size, off))
	}
	f.val = b
	f.record(nil, r, off, writeback)
	f.fire()
	return f.size, nil
}

func (f *Bytes) padded() []byte {
	out := make([]byte, f.size)
	copy(out, f.val)
	return out
}

func (f *Bytes) encode() ([]byte, error) {
	return f.padded(), nil
}

func (f *Bytes) setValue(v any) error {
	switch b := v.(type) {
	case []byte:
		return f.SetBytes(b)
	case string:
		return f.SetBytes([]byte(b))
	default:
		return errors.InvalidValue(errors.PhaseValue, nil, v,
			fmt.Sprintf("cannot assign %T to bytes", v))
	}
}

func (f *Bytes) ValueString() string {
	return fmt.Sprintf("%x", f.padded())
}

func (f *Bytes) RawString() string {
	return strconv.Quote(string(f.padded()))
}
