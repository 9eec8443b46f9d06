package field

import (
	"go.uber.org/zap"

	"github.com/wippyai/bytefield/errors"
	"github.com/wippyai/bytefield/internal/binary"
)

// Emit serializes the structure's current values into a fresh byte slice
// of exactly Size() bytes. Parsing the result from offset 0 reproduces
// every primitive's current value.
func (s *Struct) Emit() ([]byte, error) {
	w := binary.NewWriter(s.Size())

	err := s.Walk(func(off int, path []string, p Prim) error {
		b, err := p.encode()
		if err != nil {
			return withPath(err, path)
		}
		// a primitive emitting more than its reported size would overlap
		// the next field's region
		if len(b) != p.Size() {
			return errors.New(errors.PhaseEmit, errors.KindInvalidData).
				Path(path...).
				Detail("encoded %d bytes, size is %d", len(b), p.Size()).
				Build()
		}
		if err := w.PutBytes(off, b); err != nil {
			return errors.Wrap(errors.PhaseEmit, errors.KindOutOfBounds, err, "place field bytes")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	Logger().Debug("emit complete",
		zap.String("struct", s.TypeName()),
		zap.Int("size", w.Len()))
	return w.Bytes(), nil
}
