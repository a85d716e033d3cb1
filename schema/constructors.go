package schema

import "github.com/wippyai/lltypes/format"

// Big endian integers

func UBInt8(name string) *Field  { return newField(name, format.Big, format.UByte) }
func UBInt16(name string) *Field { return newField(name, format.Big, format.UShort) }
func UBInt32(name string) *Field { return newField(name, format.Big, format.UInt) }
func UBInt64(name string) *Field { return newField(name, format.Big, format.ULongLong) }

func SBInt8(name string) *Field  { return newField(name, format.Big, format.SByte) }
func SBInt16(name string) *Field { return newField(name, format.Big, format.Short) }
func SBInt32(name string) *Field { return newField(name, format.Big, format.Int) }
func SBInt64(name string) *Field { return newField(name, format.Big, format.LongLong) }

// Little endian integers

func ULInt8(name string) *Field  { return newField(name, format.Little, format.UByte) }
func ULInt16(name string) *Field { return newField(name, format.Little, format.UShort) }
func ULInt32(name string) *Field { return newField(name, format.Little, format.UInt) }
func ULInt64(name string) *Field { return newField(name, format.Little, format.ULongLong) }

func SLInt8(name string) *Field  { return newField(name, format.Little, format.SByte) }
func SLInt16(name string) *Field { return newField(name, format.Little, format.Short) }
func SLInt32(name string) *Field { return newField(name, format.Little, format.Int) }
func SLInt64(name string) *Field { return newField(name, format.Little, format.LongLong) }

// Native endian integers

func UNInt8(name string) *Field  { return newField(name, format.Native, format.UByte) }
func UNInt16(name string) *Field { return newField(name, format.Native, format.UShort) }
func UNInt32(name string) *Field { return newField(name, format.Native, format.UInt) }
func UNInt64(name string) *Field { return newField(name, format.Native, format.ULongLong) }

func SNInt8(name string) *Field  { return newField(name, format.Native, format.SByte) }
func SNInt16(name string) *Field { return newField(name, format.Native, format.Short) }
func SNInt32(name string) *Field { return newField(name, format.Native, format.Int) }
func SNInt64(name string) *Field { return newField(name, format.Native, format.LongLong) }

// IEEE floating point

func BFloat32(name string) *Field { return newField(name, format.Big, format.Float) }
func LFloat32(name string) *Field { return newField(name, format.Little, format.Float) }
func NFloat32(name string) *Field { return newField(name, format.Native, format.Float) }

func BFloat64(name string) *Field { return newField(name, format.Big, format.Double) }
func LFloat64(name string) *Field { return newField(name, format.Little, format.Double) }
func NFloat64(name string) *Field { return newField(name, format.Native, format.Double) }

func Bool(name string) *Field { return newField(name, format.Native, format.Bool) }

// Aliases

func Byte(name string) *Field  { return UBInt8(name) }
func Char(name string) *Field  { return newField(name, format.Native, format.Char) }
func SChar(name string) *Field { return SNInt8(name) }
func UChar(name string) *Field { return UNInt8(name) }

func Int8(name string) *Field  { return SNInt8(name) }
func Int16(name string) *Field { return SNInt16(name) }
func Int32(name string) *Field { return SNInt32(name) }
func Int64(name string) *Field { return SNInt64(name) }

func UInt8(name string) *Field  { return UNInt8(name) }
func UInt16(name string) *Field { return UNInt16(name) }
func UInt32(name string) *Field { return UNInt32(name) }
func UInt64(name string) *Field { return UNInt64(name) }

func Float32(name string) *Field { return NFloat32(name) }
func Float64(name string) *Field { return NFloat64(name) }

// FieldFunc builds a named scalar; every helper above is one.
type FieldFunc func(name string) *Field

// Helpers maps helper names to constructors, for schema documents.
var Helpers = map[string]FieldFunc{
	"UBInt8": UBInt8, "UBInt16": UBInt16, "UBInt32": UBInt32, "UBInt64": UBInt64,
	"SBInt8": SBInt8, "SBInt16": SBInt16, "SBInt32": SBInt32, "SBInt64": SBInt64,
	"ULInt8": ULInt8, "ULInt16": ULInt16, "ULInt32": ULInt32, "ULInt64": ULInt64,
	"SLInt8": SLInt8, "SLInt16": SLInt16, "SLInt32": SLInt32, "SLInt64": SLInt64,
	"UNInt8": UNInt8, "UNInt16": UNInt16, "UNInt32": UNInt32, "UNInt64": UNInt64,
	"SNInt8": SNInt8, "SNInt16": SNInt16, "SNInt32": SNInt32, "SNInt64": SNInt64,
	"BFloat32": BFloat32, "LFloat32": LFloat32, "NFloat32": NFloat32,
	"BFloat64": BFloat64, "LFloat64": LFloat64, "NFloat64": NFloat64,
	"Bool": Bool, "Byte": Byte, "Char": Char, "SChar": SChar, "UChar": UChar,
	"Int8": Int8, "Int16": Int16, "Int32": Int32, "Int64": Int64,
	"UInt8": UInt8, "UInt16": UInt16, "UInt32": UInt32, "UInt64": UInt64,
	"Float32": Float32, "Float64": Float64,
}

// Strings

// FixedString is a sequence of length chars.
func FixedString(name string, length int) (*Sequence, error) {
	return NewSequence(name, Char(""), length)
}

// CString is a NUL-terminated string.
func CString(name string) *TerminatedString {
	return NewTerminatedString(name, 0)
}

// Array headers

// ArrayC describes a C-contiguous n-dimensional array header: a data
// pointer followed by nd extents.
func ArrayC(name string, elem FieldFunc, nd int) (*Struct, error) {
	return arrayHeader(name, elem, nd, false)
}

// ArrayF describes a Fortran-contiguous header. The layout is the same as
// ArrayC; only the name records the ordering.
func ArrayF(name string, elem FieldFunc, nd int) (*Struct, error) {
	return arrayHeader(name, elem, nd, false)
}

// ArrayS describes a strided header: data pointer, extents and strides.
func ArrayS(name string, elem FieldFunc, nd int) (*Struct, error) {
	return arrayHeader(name, elem, nd, true)
}

func arrayHeader(name string, elem FieldFunc, nd int, strided bool) (*Struct, error) {
	shape, err := NewSequence("shape", Int64(""), nd)
	if err != nil {
		return nil, err
	}
	fields := []Type{NewPointer(elem("data")), shape}
	if strided {
		strides, err := NewSequence("strides", Int64(""), nd)
		if err != nil {
			return nil, err
		}
		fields = append(fields, strides)
	}
	return NewStruct(name, fields...)
}
