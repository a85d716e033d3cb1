package format

// Code is a one-character scalar format code.
type Code byte

const (
	Char      Code = 'c'
	SByte     Code = 'b'
	UByte     Code = 'B'
	Bool      Code = '?'
	Short     Code = 'h'
	UShort    Code = 'H'
	Int       Code = 'i'
	UInt      Code = 'I'
	Long      Code = 'l'
	ULong     Code = 'L'
	LongLong  Code = 'q'
	ULongLong Code = 'Q'
	Float     Code = 'f'
	Double    Code = 'd'
	Bytes     Code = 's'
	PascalStr Code = 'p'
	VoidPtr   Code = 'P'
)

// Codes lists the vocabulary in registry order.
var Codes = []Code{
	Char, SByte, UByte, Bool,
	Short, UShort, Int, UInt,
	Long, ULong, LongLong, ULongLong,
	Float, Double, Bytes, PascalStr, VoidPtr,
}

type codeInfo struct {
	name     string
	size     int // struct-module standard size
	signed   bool
	float    bool
	byteLike bool
	valid    bool
}

var codeInfos = [256]codeInfo{
	Char:      {name: "char", size: 1, byteLike: true, valid: true},
	SByte:     {name: "signed byte", size: 1, signed: true, byteLike: true, valid: true},
	UByte:     {name: "unsigned byte", size: 1, byteLike: true, valid: true},
	Bool:      {name: "bool", size: 1, valid: true},
	Short:     {name: "short", size: 2, signed: true, valid: true},
	UShort:    {name: "unsigned short", size: 2, valid: true},
	Int:       {name: "int", size: 4, signed: true, valid: true},
	UInt:      {name: "unsigned int", size: 4, valid: true},
	Long:      {name: "long", size: 4, signed: true, valid: true},
	ULong:     {name: "unsigned long", size: 4, valid: true},
	LongLong:  {name: "long long", size: 8, signed: true, valid: true},
	ULongLong: {name: "unsigned long long", size: 8, valid: true},
	Float:     {name: "float", size: 4, float: true, valid: true},
	Double:    {name: "double", size: 8, float: true, valid: true},
	Bytes:     {name: "char[]", size: 1, byteLike: true, valid: true},
	PascalStr: {name: "pascal string", size: 1, valid: true},
	VoidPtr:   {name: "void *", size: 8, valid: true},
}

// Parse validates a format character.
func Parse(c byte) (Code, bool) {
	code := Code(c)
	return code, code.Valid()
}

func (c Code) Valid() bool {
	return codeInfos[c].valid
}

func (c Code) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return string(rune(c))
}

// Describe returns the C spelling of the code, e.g. "unsigned short".
func (c Code) Describe() string {
	if !c.Valid() {
		return "invalid"
	}
	return codeInfos[c].name
}

// StandardSize is the byte width the code has in standard (non-native)
// mode, independent of any platform ABI.
func (c Code) StandardSize() int {
	return codeInfos[c].size
}

func (c Code) Signed() bool {
	return codeInfos[c].signed
}

func (c Code) IsFloat() bool {
	return codeInfos[c].float
}

// ByteLike reports whether the code names a single raw byte (char, signed
// or unsigned byte, byte string). Only pointers to byte-like data have an
// array descriptor.
func (c Code) ByteLike() bool {
	return codeInfos[c].byteLike
}

// Endianness is the byte order prefix of an array type string.
type Endianness byte

const (
	Big    Endianness = '>'
	Little Endianness = '<'
	Native Endianness = '='
)

// ParseEndianness validates an endianness prefix.
func ParseEndianness(c byte) (Endianness, bool) {
	e := Endianness(c)
	return e, e.Valid()
}

func (e Endianness) Valid() bool {
	return e == Big || e == Little || e == Native
}

func (e Endianness) String() string {
	if !e.Valid() {
		return "invalid"
	}
	return string(rune(e))
}

// Describe returns "big", "little" or "native".
func (e Endianness) Describe() string {
	switch e {
	case Big:
		return "big"
	case Little:
		return "little"
	case Native:
		return "native"
	default:
		return "invalid"
	}
}

// TypeString is the canonical array type string: prefix followed by code.
func TypeString(e Endianness, c Code) string {
	return string([]byte{byte(e), byte(c)})
}
