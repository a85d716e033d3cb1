// Package schema is the type descriptor model: an immutable tree of nodes
// describing the exact binary layout of a value.
//
// # Nodes
//
//	Field             scalar: name, endianness, format code
//	Struct            ordered members
//	Union             options overlaid on one region, plus a tag
//	Enum              symbol -> value table over a one-byte index
//	Sequence          fixed-length repetition of an element
//	Vector            SIMD vector of 2, 4 or 8 scalar lanes
//	Pointer           indirection to an element (nil = opaque)
//	VariableString    (pointer, length) string
//	TerminatedString  sentinel-terminated string
//
// Structural rules are checked at construction: NewSequence rejects a
// negative length and NewVector a width outside {2, 4, 8}, both with a
// malformed_schema error. Nothing is checked again at lowering time.
//
// # Constructors
//
// Helpers cover every width and byte order:
//
//	s, err := schema.NewStruct("mystruct",
//		schema.Bool("a"),
//		schema.Int8("b"),
//		schema.Float32("c"),
//	)
//
// UBInt16 is unsigned, big endian, 16 bits; SLInt32 is signed, little
// endian, 32 bits; UNInt64 is unsigned, native, 64 bits. Byte, Char, Int8
// through UInt64, Float32 and Float64 are the usual aliases.
//
// # Names
//
// Sequence.Name is its declared name, falling back to the element's name.
// Pointer.Name and Vector.Name are the element's name. Lowering uses Name
// for record keys and error paths.
package schema
