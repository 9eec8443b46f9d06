package field

import (
	"fmt"
	"strconv"

	"github.com/wippyai/bytefield"
	"github.com/wippyai/bytefield/errors"
	"github.com/wippyai/bytefield/internal/binary"
)

// ByteOrder selects the byte order of integer fields.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) String() string {
	if o == BigEndian {
		return "big"
	}
	return "little"
}

func (o ByteOrder) codec() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Int is a fixed-width integer field of 1 to 8 bytes. Values are stored as
// raw bits masked to the field width; signed fields sign-extend on read.
type Int struct {
	prim
	val    uint64
	order  ByteOrder
	signed bool
	enum   *Enum
}

// NewInt creates an integer field of the given byte width. Width must be
// between 1 and 8; out-of-range widths are clamped.
func NewInt(size int, signed bool) *Int {
	if size < 1 {
		size = 1
	}
	if size > 8 {
		size = 8
	}
	f := &Int{signed: signed, order: LittleEndian}
	f.resize(size)
	return f
}

// NewInt8 creates a signed 8 bit integer field.
func NewInt8() *Int { return NewInt(1, true) }

// NewInt16 creates a signed 16 bit integer field.
func NewInt16() *Int { return NewInt(2, true) }

// NewInt32 creates a signed 32 bit integer field.
func NewInt32() *Int { return NewInt(4, true) }

// NewInt64 creates a signed 64 bit integer field.
func NewInt64() *Int { return NewInt(8, true) }

// NewUint8 creates an unsigned 8 bit integer field.
func NewUint8() *Int { return NewInt(1, false) }

// NewUint16 creates an unsigned 16 bit integer field.
func NewUint16() *Int { return NewInt(2, false) }

// NewUint32 creates an unsigned 32 bit integer field.
func NewUint32() *Int { return NewInt(4, false) }

// NewUint64 creates an unsigned 64 bit integer field.
func NewUint64() *Int { return NewInt(8, false) }

// NewPtr32 creates an unsigned 32 bit pointer-sized field.
func NewPtr32() *Int { return NewInt(4, false) }

// NewPtr64 creates an unsigned 64 bit pointer-sized field.
func NewPtr64() *Int { return NewInt(8, false) }

// WithOrder sets the byte order and returns the field for chaining.
func (f *Int) WithOrder(o ByteOrder) *Int {
	f.order = o
	return f
}

// WithEnum attaches an enumeration table used when rendering the value.
// The table has no effect on parsing or emission.
func (f *Int) WithEnum(e *Enum) *Int {
	f.enum = e
	return f
}

// WithUint sets the initial value and returns the field for chaining.
func (f *Int) WithUint(v uint64) *Int {
	f.val = v & f.mask()
	return f
}

// Order returns the field's byte order.
func (f *Int) Order() ByteOrder {
	return f.order
}

// Signed reports whether the field sign-extends on read.
func (f *Int) Signed() bool {
	return f.signed
}

func (f *Int) TypeName() string {
	if f.signed {
		return fmt.Sprintf("int%d", f.size*8)
	}
	return fmt.Sprintf("uint%d", f.size*8)
}

func (f *Int) mask() uint64 {
	if f.size >= 8 {
		return ^uint64(0)
	}
	return 1<<(8*f.size) - 1
}

// Uint returns the value as raw unsigned bits.
func (f *Int) Uint() uint64 {
	return f.val
}

// Int returns the value, sign-extended when the field is signed.
func (f *Int) Int() int64 {
	if f.signed && f.size < 8 && f.val&(1<<(8*f.size-1)) != 0 {
		return int64(f.val | ^f.mask())
	}
	return int64(f.val)
}

// SetUint assigns a value, masking it to the field width.
func (f *Int) SetUint(v uint64) error {
	f.val = v & f.mask()
	if err := f.writeBack(f.encodeVal()); err != nil {
		return err
	}
	f.fire()
	return nil
}

// SetInt assigns a signed value, masking it to the field width.
func (f *Int) SetInt(v int64) error {
	return f.SetUint(uint64(v))
}

func (f *Int) parseAt(buf []byte, off int, writeback bool) (int, error) {
	if off < 0 || off+f.size > len(buf) {
		return 0, errors.BufferUnderrun(errors.PhaseParse, nil, f.size, max(len(buf)-off, 0))
	}
	f.val = binary.Uint(buf[off:off+f.size], f.order.codec())
	f.record(buf, nil, off, writeback)
	f.fire()
	return f.size, nil
}

func (f *Int) loadAt(r bytefield.SeekReader, off int, writeback bool) (int, error) {
	b, err := binary.ReadAt(r, off, f.size)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseLoad, errors.KindBufferUnderrun, err,
			fmt.Sprintf("read %d bytes at offset %d", f.size, off))
	}
	f.val = binary.Uint(b, f.order.codec())
	f.record(nil, r, off, writeback)
	f.fire()
	return f.size, nil
}

func (f *Int) encodeVal() []byte {
	return binary.PutUint(f.val, f.size, f.order.codec())
}

func (f *Int) encode() ([]byte, error) {
	return f.encodeVal(), nil
}

func (f *Int) setValue(v any) error {
	switch n := v.(type) {
	case int:
		return f.SetInt(int64(n))
	case int8:
		return f.SetInt(int64(n))
	case int16:
		return f.SetInt(int64(n))
	case int32:
		return f.SetInt(int64(n))
	case int64:
		return f.SetInt(n)
	case uint:
		return f.SetUint(uint64(n))
	case uint8:
		return f.SetUint(uint64(n))
	case uint16:
		return f.SetUint(uint64(n))
	case uint32:
		return f.SetUint(uint64(n))
	case uint64:
		return f.SetUint(n)
	default:
		return errors.InvalidValue(errors.PhaseValue, nil, v,
			fmt.Sprintf("cannot assign %T to %s", v, f.TypeName()))
	}
}

func (f *Int) ValueString() string {
	if f.enum != nil {
		if label, ok := f.enum.Name(f.val); ok {
			return label
		}
	}
	if f.signed {
		return strconv.FormatInt(f.Int(), 10)
	}
	return strconv.FormatUint(f.val, 10)
}

func (f *Int) RawString() string {
	return fmt.Sprintf("0x%x", f.encodeVal())
}
