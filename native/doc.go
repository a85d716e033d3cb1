// Package native models C-compatible layouts for a foreign function
// interface: scalars, structs, unions, arrays, pointers and integer-backed
// enums, each with a byte-accurate size and alignment for a given ABI.
//
// # ABI
//
// Widths that vary between platforms come from an ABI value. HostABI
// describes the running process; LP64, LLP64 and ILP32 are presets for
// cross-target inspection.
//
//	a := native.LP64
//	s, err := native.NewStruct("pair", []native.Member{
//		{Name: "a", Type: native.NewScalar(a, format.CByte, format.Native)},
//		{Name: "b", Type: native.NewScalar(a, format.CLongLong, format.Native)},
//	})
//	// s.Size() == 16, s.Fields[1].Offset == 8
//
// Scalars stored in the non-native byte order are marked swapped and
// render with a _be or _le suffix.
//
// # Enums
//
// An Enum is backed by a scalar and carries its symbol table. New builds an
// instance from a value and fails with a range violation for values the
// table does not contain.
package native
