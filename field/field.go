package field

import (
	"io"

	"github.com/wippyai/bytefield"
	"github.com/wippyai/bytefield/errors"
)

// Field is a node in a layout tree: a primitive leaf or a nested Struct.
// The set of implementations is closed to the package.
type Field interface {
	// Size returns the current byte size of the field.
	Size() int
	// TypeName returns the display name of the field's type.
	TypeName() string
	// IsPrim reports whether the field is a leaf primitive.
	IsPrim() bool
	// OnSet registers a callback fired when the field's value is updated.
	// Callbacks also fire during Parse and Load.
	OnSet(fn func())

	fire()
}

// Prim is the leaf contract observed by the offset walker. Only primitive
// fields implement it.
type Prim interface {
	Field

	// ValueString renders the decoded value for display.
	ValueString() string
	// RawString renders the raw encoded form for display.
	RawString() string

	// parseAt decodes the primitive from buf at the absolute offset and
	// returns the number of bytes consumed. The primitive adjusts its own
	// size to the consumed length before returning.
	parseAt(buf []byte, off int, writeback bool) (int, error)
	// loadAt is parseAt sourced from a seekable stream.
	loadAt(r bytefield.SeekReader, off int, writeback bool) (int, error)
	// encode returns exactly Size() bytes for the current value.
	encode() ([]byte, error)
	// setValue assigns a raw value, normalizing per the primitive's rules.
	setValue(v any) error
}

// composite is satisfied by Struct and everything embedding it; the walker
// uses it to recurse without enumerating concrete types.
type composite interface {
	inner() *Struct
}

// callbacks implements OnSet notification for all field kinds.
type callbacks struct {
	onSet []func()
}

func (c *callbacks) OnSet(fn func()) {
	c.onSet = append(c.onSet, fn)
}

func (c *callbacks) fire() {
	for _, fn := range c.onSet {
		fn()
	}
}

// prim carries the state shared by every primitive: the current size and
// the backing source recorded at parse time for writeback.
type prim struct {
	callbacks
	size int

	backBuf    []byte
	backStream bytefield.SeekReader
	backOff    int
	writeback  bool
}

func (p *prim) Size() int {
	return p.size
}

func (p *prim) IsPrim() bool {
	return true
}

func (p *prim) resize(n int) {
	p.size = n
}

// record remembers where the primitive's bytes came from so a later value
// assignment can be written back to the source.
func (p *prim) record(buf []byte, stream bytefield.SeekReader, off int, writeback bool) {
	p.backBuf = buf
	p.backStream = stream
	p.backOff = off
	p.writeback = writeback
}

// writeBack pushes enc into the recorded source. It is a no-op unless the
// last parse or load requested writeback.
func (p *prim) writeBack(enc []byte) error {
	if !p.writeback {
		return nil
	}

	if p.backBuf != nil {
		n := len(enc)
		if p.backOff+n > len(p.backBuf) {
			n = len(p.backBuf) - p.backOff
		}
		if n > 0 {
			copy(p.backBuf[p.backOff:p.backOff+n], enc[:n])
		}
		return nil
	}

	if p.backStream != nil {
		w, ok := p.backStream.(bytefield.SeekWriter)
		if !ok {
			return errors.Unsupported(errors.PhaseValue, "writeback requested on a read-only stream")
		}
		if _, err := w.Seek(int64(p.backOff), io.SeekStart); err != nil {
			return errors.Wrap(errors.PhaseValue, errors.KindInvalidData, err, "writeback seek")
		}
		if _, err := w.Write(enc); err != nil {
			return errors.Wrap(errors.PhaseValue, errors.KindInvalidData, err, "writeback write")
		}
	}

	return nil
}
