// Package field implements the core binary layout engine: typed primitive
// fields composed into ordered, named structures that parse from and emit
// to raw bytes.
//
// # Building a Layout
//
// A layout is assembled by attaching fields to a Struct:
//
//	s := field.NewStruct("packet")
//	s.Attach("kind", field.NewUint8())
//	s.Attach("length", field.NewUint16())
//	s.Attach("name", field.NewZStr())
//
// Fields keep insertion order, which is the byte order of the layout.
// Structs nest arbitrarily, and Array provides index-named homogeneous
// repetition.
//
// # Parse, Load, Emit
//
// Parse fills the tree from an in-memory buffer; Load does the same from a
// seekable stream; Emit serializes the current values back out:
//
//	end, err := s.Parse(buf, 0, false)
//	out, err := s.Emit()
//
// Variable-length primitives (ZStr) resize themselves while parsing, and
// the offsets of every later field follow automatically: offsets are
// derived from current sizes on every walk, never cached.
//
// # Concurrency
//
// A Struct exclusively owns its children; a field must not be shared
// between two structures. Instances are not safe for concurrent use, and
// re-entrant parsing of one instance is not supported.
package field
