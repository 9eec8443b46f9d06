// Package bytefield provides a declarative binary layout engine.
//
// A layout is a tree of typed fields: primitives (integers, fixed bytes,
// fixed-width text, null-terminated text) composed into named structures,
// which nest arbitrarily. The tree parses raw bytes into field values,
// exposes typed accessors for mutation, and re-emits bytes that match the
// layout exactly, including any size changes a mutation caused.
//
// The library is organized into a small set of packages:
//
//	bytefield/          Root package with stream contracts
//	├── field/          Core engine: structures, primitives, parse/emit
//	├── schema/         TOML layout definitions compiled to field trees
//	├── errors/         Structured error types
//	├── internal/       Byte-level codecs shared by the engine
//	└── cmd/inspect/    CLI and interactive inspector for binary files
//
// # Quick Start
//
// Define a layout, parse bytes, and read values:
//
//	s := field.NewStruct("header")
//	s.Attach("magic", field.NewUint32().WithOrder(field.BigEndian))
//	s.Attach("title", field.NewCStr(8))
//
//	if _, err := s.Parse(data, 0, false); err != nil {
//	    log.Fatal(err)
//	}
//
//	magic, _ := s.Uint("magic")
//	title, _ := s.Str("title")
//
// Mutate a field and serialize the structure back:
//
//	s.Set("magic", 0xfeedface)
//	out, err := s.Emit()
//
// # Offsets
//
// Field offsets are never stored. Every parse, emit, and size query walks
// the tree and derives offsets from the current size of each primitive, so
// a variable-length field that grows or shrinks shifts everything after it
// on the next operation with no extra bookkeeping.
//
// # Thread Safety
//
// A Struct and its fields are NOT safe for concurrent use. Independent
// buffers must be parsed with independent Struct instances, or access must
// be synchronized by the caller.
package bytefield
