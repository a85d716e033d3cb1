// Package format is the format registry shared by every lowering target.
//
// A scalar is identified by a one-character Code (the struct-module
// vocabulary: c b B ? h H i I l L q Q f d s p P) and an Endianness prefix
// (> big, < little, = native). Together they form the canonical array type
// string used by the array descriptor target:
//
//	format.TypeString(format.Big, format.UShort) // ">H"
//
// The per-target tables are fixed arrays indexed by Code and are never
// mutated:
//
//	Code  native        IR      WIT
//	──────────────────────────────────
//	c     c_char        i8      u8
//	b     c_byte        i8      s8
//	B     c_ubyte       i8      u8
//	?     c_bool        i1      bool
//	h/H   c_(u)short    i16     s16/u16
//	i/I   c_(u)int      i32     s32/u32
//	l/L   c_(u)long     -       -
//	q/Q   c_(u)longlong i64     s64/u64
//	f     c_float       float   f32
//	d     c_double      double  f64
//	s/p   c_char_p      i8      -
//	P     c_void_p      i8*     -
//
// The tables intentionally differ in coverage. A missing entry is not an
// error here; the lowering engine reports it against the requesting node.
package format
