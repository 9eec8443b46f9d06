package field

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/wippyai/bytefield"
	"github.com/wippyai/bytefield/errors"
	"github.com/wippyai/bytefield/internal/binary"
)

// CStr is a fixed-width text field. Assigned values are truncated to the
// declared width; shorter values emit right-padded with NUL bytes, and
// parsing stops the decoded value at the first NUL.
type CStr struct {
	prim
	val string
}

// NewCStr creates a fixed-width text field of the given size.
func NewCStr(size int) *CStr {
	if size < 0 {
		size = 0
	}
	f := &CStr{}
	f.resize(size)
	return f
}

func (f *CStr) TypeName() string {
	return "cstr"
}

// Value returns the current string.
func (f *CStr) Value() string {
	return f.val
}

// SetString assigns a value, truncating it to the field width.
func (f *CStr) SetString(s string) error {
	b := []byte(s)
	if len(b) > f.size {
		b = b[:f.size]
	}
	f.val = string(b)
	if err := f.writeBack(f.padded()); err != nil {
		return err
	}
	f.fire()
	return nil
}

func (f *CStr) parseAt(buf []byte, off int, writeback bool) (int, error) {
	if off < 0 || off+f.size > len(buf) {
		return 0, errors.BufferUnderrun(errors.PhaseParse, nil, f.size, max(len(buf)-off, 0))
	}
	f.val = cutNUL(buf[off : off+f.size])
	f.record(buf, nil, off, writeback)
	f.fire()
	return f.size, nil
}

func (f *CStr) loadAt(r bytefield.SeekReader, off int, writeback bool) (int, error) {
	b, err := binary.ReadAt(r, off, f.size)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseLoad, errors.KindBufferUnderrun, err,
			fmt.Sprintf("read %d bytes at offset %d", f.size, off))
	}
	f.val = cutNUL(b)
	f.record(nil, r, off, writeback)
	f.fire()
	return f.size, nil
}

func (f *CStr) padded() []byte {
	out := make([]byte, f.size)
	copy(out, f.val)
	return out
}

func (f *CStr) encode() ([]byte, error) {
	return f.padded(), nil
}

func (f *CStr) setValue(v any) error {
	switch s := v.(type) {
	case string:
		return f.SetString(s)
	case []byte:
		return f.SetString(string(s))
	default:
		return errors.InvalidValue(errors.PhaseValue, nil, v,
			fmt.Sprintf("cannot assign %T to cstr", v))
	}
}

func (f *CStr) ValueString() string {
	return f.val
}

func (f *CStr) RawString() string {
	return strconv.Quote(f.val)
}

// ZStr is a NUL terminated text field. Its size is always the encoded
// length of the value plus one, recomputed on every assignment and parse,
// so fields after it shift on the next walk.
type ZStr struct {
	prim
	val string
}

// NewZStr creates an empty NUL terminated text field.
func NewZStr() *ZStr {
	f := &ZStr{}
	f.resize(1)
	return f
}

func (f *ZStr) TypeName() string {
	return "zstr"
}

// Value returns the current string.
func (f *ZStr) Value() string {
	return f.val
}

// SetString assigns a value and resizes the field to len(value)+1.
func (f *ZStr) SetString(s string) error {
	f.val = s
	f.resize(len(s) + 1)
	enc, _ := f.encode()
	if err := f.writeBack(enc); err != nil {
		return err
	}
	f.fire()
	return nil
}

func (f *ZStr) parseAt(buf []byte, off int, writeback bool) (int, error) {
	if off < 0 || off > len(buf) {
		return 0, errors.BufferUnderrun(errors.PhaseParse, nil, 1, 0)
	}
	i := bytes.IndexByte(buf[off:], 0)
	if i < 0 {
		have := len(buf) - off
		return 0, errors.BufferUnderrun(errors.PhaseParse, nil, have+1, have)
	}
	f.val = string(buf[off : off+i])
	f.resize(i + 1)
	f.record(buf, nil, off, writeback)
	f.fire()
	return i + 1, nil
}

func (f *ZStr) loadAt(r bytefield.SeekReader, off int, writeback bool) (int, error) {
	b, err := binary.ScanAt(r, off, 0)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseLoad, errors.KindBufferUnderrun, err,
			fmt.Sprintf("scan for terminator at offset %d", off))
	}
	f.val = string(b)
	f.resize(len(b) + 1)
	f.record(nil, r, off, writeback)
	f.fire()
	return len(b) + 1, nil
}

func (f *ZStr) encode() ([]byte, error) {
	return append([]byte(f.val), 0), nil
}

func (f *ZStr) setValue(v any) error {
	switch s := v.(type) {
	case string:
		return f.SetString(s)
	case []byte:
		return f.SetString(string(s))
	default:
		return errors.InvalidValue(errors.PhaseValue, nil, v,
			fmt.Sprintf("cannot assign %T to zstr", v))
	}
}

func (f *ZStr) ValueString() string {
	return f.val
}

func (f *ZStr) RawString() string {
	return strconv.Quote(f.val)
}

// cutNUL decodes a fixed-width text region, dropping the first NUL and
// everything after it.
func cutNUL(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}
