package field

import (
	"go.uber.org/zap"

	"github.com/wippyai/bytefield"
	"github.com/wippyai/bytefield/errors"
)

// Parse fills the structure's fields from buf starting at off and returns
// the offset one past the last consumed byte (off plus the structure's
// size after parsing).
//
// Each primitive decodes its own slice of buf and may resize itself as a
// side effect; the offsets of all later primitives follow within the same
// walk. A failed decode leaves that primitive's value untouched, but
// earlier primitives keep the values they already decoded.
//
// When writeback is true, later value assignments on the parsed fields are
// written back into buf at the offsets they were parsed from.
//
// After a successful parse the structure fires its OnSet callbacks once.
func (s *Struct) Parse(buf []byte, off int, writeback bool) (int, error) {
	end := off
	err := s.Walk(func(rel int, path []string, p Prim) error {
		n, err := p.parseAt(buf, off+rel, writeback)
		if err != nil {
			return withPath(err, path)
		}
		end = off + rel + n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.fire()
	Logger().Debug("parse complete",
		zap.String("struct", s.TypeName()),
		zap.Int("offset", off),
		zap.Int("size", end-off))
	return end, nil
}

// Load is Parse sourced from a seekable stream. Each primitive positions
// the stream itself, so r needs no particular starting position.
func (s *Struct) Load(r bytefield.SeekReader, off int, writeback bool) (int, error) {
	end := off
	err := s.Walk(func(rel int, path []string, p Prim) error {
		n, err := p.loadAt(r, off+rel, writeback)
		if err != nil {
			return withPath(err, path)
		}
		end = off + rel + n
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.fire()
	Logger().Debug("load complete",
		zap.String("struct", s.TypeName()),
		zap.Int("offset", off),
		zap.Int("size", end-off))
	return end, nil
}

// withPath fills in the walk path on structured errors raised by a
// primitive, which does not know its own position in the tree.
func withPath(err error, path []string) error {
	if e, ok := err.(*errors.Error); ok && len(e.Path) == 0 {
		e.Path = path
	}
	return err
}
