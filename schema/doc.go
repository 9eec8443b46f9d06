// Package schema loads TOML layout definitions and compiles them into
// field trees.
//
// A definition names a structure and lists its fields in layout order:
//
//	name = "header"
//
//	[[fields]]
//	name = "magic"
//	type = "u32"
//	endian = "big"
//
//	[[fields]]
//	name = "title"
//	type = "cstr"
//	size = 8
//
// Nested structures repeat the fields list under a field of type
// "struct"; arrays give a count and a single elem definition. The schema
// layer is caller-side convenience: the core engine never sees or
// validates these definitions.
package schema
