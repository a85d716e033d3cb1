package format

// CType is a primitive of the native foreign-call type system.
type CType uint8

const (
	CInvalid CType = iota
	CChar
	CByte
	CUByte
	CBool
	CShort
	CUShort
	CInt
	CUInt
	CLong
	CULong
	CLongLong
	CULongLong
	CFloat
	CDouble
	CCharP
	CVoidP
)

var ctypeNames = [...]string{
	CInvalid:   "invalid",
	CChar:      "c_char",
	CByte:      "c_byte",
	CUByte:     "c_ubyte",
	CBool:      "c_bool",
	CShort:     "c_short",
	CUShort:    "c_ushort",
	CInt:       "c_int",
	CUInt:      "c_uint",
	CLong:      "c_long",
	CULong:     "c_ulong",
	CLongLong:  "c_longlong",
	CULongLong: "c_ulonglong",
	CFloat:     "c_float",
	CDouble:    "c_double",
	CCharP:     "c_char_p",
	CVoidP:     "c_void_p",
}

func (t CType) String() string {
	if int(t) < len(ctypeNames) {
		return ctypeNames[t]
	}
	return "unknown"
}

// IsPointer reports whether the C type is pointer-sized.
func (t CType) IsPointer() bool {
	return t == CCharP || t == CVoidP
}

// IRPrim is a primitive of the IR type system.
type IRPrim uint8

const (
	IRInvalid IRPrim = iota
	IRInt1
	IRInt8
	IRInt16
	IRInt32
	IRInt64
	IRFloat
	IRDouble
	IRBytePtr
)

var irPrimNames = [...]string{
	IRInvalid: "invalid",
	IRInt1:    "i1",
	IRInt8:    "i8",
	IRInt16:   "i16",
	IRInt32:   "i32",
	IRInt64:   "i64",
	IRFloat:   "float",
	IRDouble:  "double",
	IRBytePtr: "i8*",
}

func (p IRPrim) String() string {
	if int(p) < len(irPrimNames) {
		return irPrimNames[p]
	}
	return "unknown"
}

// Bits returns the integer width of an integer primitive, 0 otherwise.
func (p IRPrim) Bits() int {
	switch p {
	case IRInt1:
		return 1
	case IRInt8:
		return 8
	case IRInt16:
		return 16
	case IRInt32:
		return 32
	case IRInt64:
		return 64
	default:
		return 0
	}
}

// WITPrim is a primitive of the component-model type system.
type WITPrim uint8

const (
	WITInvalid WITPrim = iota
	WITBool
	WITU8
	WITS8
	WITU16
	WITS16
	WITU32
	WITS32
	WITU64
	WITS64
	WITF32
	WITF64
)

var witPrimNames = [...]string{
	WITInvalid: "invalid",
	WITBool:    "bool",
	WITU8:      "u8",
	WITS8:      "s8",
	WITU16:     "u16",
	WITS16:     "s16",
	WITU32:     "u32",
	WITS32:     "s32",
	WITU64:     "u64",
	WITS64:     "s64",
	WITF32:     "f32",
	WITF64:     "f64",
}

func (p WITPrim) String() string {
	if int(p) < len(witPrimNames) {
		return witPrimNames[p]
	}
	return "unknown"
}

// nativeTable maps every code of the vocabulary.
var nativeTable = [256]CType{
	Char:      CChar,
	SByte:     CByte,
	UByte:     CUByte,
	Bool:      CBool,
	Short:     CShort,
	UShort:    CUShort,
	Int:       CInt,
	UInt:      CUInt,
	Long:      CLong,
	ULong:     CULong,
	LongLong:  CLongLong,
	ULongLong: CULongLong,
	Float:     CFloat,
	Double:    CDouble,
	Bytes:     CCharP,
	PascalStr: CCharP,
	VoidPtr:   CVoidP,
}

// irTable has no entry for the platform-width long codes: IR integers are
// fixed width.
var irTable = [256]IRPrim{
	Char:      IRInt8,
	SByte:     IRInt8,
	UByte:     IRInt8,
	Bool:      IRInt1,
	Short:     IRInt16,
	UShort:    IRInt16,
	Int:       IRInt32,
	UInt:      IRInt32,
	LongLong:  IRInt64,
	ULongLong: IRInt64,
	Float:     IRFloat,
	Double:    IRDouble,
	Bytes:     IRInt8,
	PascalStr: IRInt8,
	VoidPtr:   IRBytePtr,
}

// witTable covers the fixed-width numeric codes only.
var witTable = [256]WITPrim{
	Char:      WITU8,
	SByte:     WITS8,
	UByte:     WITU8,
	Bool:      WITBool,
	Short:     WITS16,
	UShort:    WITU16,
	Int:       WITS32,
	UInt:      WITU32,
	LongLong:  WITS64,
	ULongLong: WITU64,
	Float:     WITF32,
	Double:    WITF64,
}

// NativeType returns the native primitive for code.
func NativeType(c Code) (CType, bool) {
	t := nativeTable[c]
	return t, t != CInvalid
}

// IRType returns the IR primitive for code.
func IRType(c Code) (IRPrim, bool) {
	p := irTable[c]
	return p, p != IRInvalid
}

// WITType returns the component-model primitive for code.
func WITType(c Code) (WITPrim, bool) {
	p := witTable[c]
	return p, p != WITInvalid
}
