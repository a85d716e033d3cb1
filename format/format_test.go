package format

import "testing"

func TestParse(t *testing.T) {
	for _, c := range Codes {
		got, ok := Parse(byte(c))
		if !ok || got != c {
			t.Errorf("Parse(%q) = %v, %v", byte(c), got, ok)
		}
	}

	for _, c := range []byte{'x', 'e', 'n', 0, '>'} {
		if _, ok := Parse(c); ok {
			t.Errorf("Parse(%q) should fail", c)
		}
	}
}

func TestParseEndianness(t *testing.T) {
	tests := []struct {
		in   byte
		ok   bool
		desc string
	}{
		{'>', true, "big"},
		{'<', true, "little"},
		{'=', true, "native"},
		{'!', false, "invalid"},
		{'@', false, "invalid"},
	}
	for _, tt := range tests {
		e, ok := ParseEndianness(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseEndianness(%q) ok = %v, want %v", tt.in, ok, tt.ok)
		}
		if e.Describe() != tt.desc {
			t.Errorf("Describe(%q) = %q, want %q", tt.in, e.Describe(), tt.desc)
		}
	}
}

func TestTypeString(t *testing.T) {
	tests := []struct {
		e    Endianness
		c    Code
		want string
	}{
		{Big, UShort, ">H"},
		{Little, Short, "<h"},
		{Native, Float, "=f"},
		{Native, Bool, "=?"},
		{Big, ULongLong, ">Q"},
	}
	for _, tt := range tests {
		if got := TypeString(tt.e, tt.c); got != tt.want {
			t.Errorf("TypeString(%v, %v) = %q, want %q", tt.e, tt.c, got, tt.want)
		}
	}
}

func TestStandardSize(t *testing.T) {
	tests := map[Code]int{
		Char: 1, SByte: 1, UByte: 1, Bool: 1,
		Short: 2, UShort: 2,
		Int: 4, UInt: 4, Long: 4, ULong: 4,
		LongLong: 8, ULongLong: 8,
		Float: 4, Double: 8,
	}
	for c, want := range tests {
		if got := c.StandardSize(); got != want {
			t.Errorf("%v.StandardSize() = %d, want %d", c, got, want)
		}
	}
}

func TestByteLike(t *testing.T) {
	for _, c := range Codes {
		want := c == Char || c == SByte || c == UByte || c == Bytes
		if c.ByteLike() != want {
			t.Errorf("%v.ByteLike() = %v, want %v", c, c.ByteLike(), want)
		}
	}
}

func TestNativeTableCoversVocabulary(t *testing.T) {
	for _, c := range Codes {
		if _, ok := NativeType(c); !ok {
			t.Errorf("no native type for %v", c)
		}
	}
	if ct, _ := NativeType(UShort); ct.String() != "c_ushort" {
		t.Errorf("NativeType(H) = %v", ct)
	}
}

func TestIRTableOmitsPlatformLong(t *testing.T) {
	for _, c := range Codes {
		_, ok := IRType(c)
		want := c != Long && c != ULong
		if ok != want {
			t.Errorf("IRType(%v) ok = %v, want %v", c, ok, want)
		}
	}

	tests := map[Code]string{
		Bool: "i1", SByte: "i8", Short: "i16", UInt: "i32",
		LongLong: "i64", Float: "float", Double: "double", VoidPtr: "i8*",
	}
	for c, want := range tests {
		p, _ := IRType(c)
		if p.String() != want {
			t.Errorf("IRType(%v) = %v, want %v", c, p, want)
		}
	}
}

func TestWITTable(t *testing.T) {
	for _, c := range []Code{Long, ULong, Bytes, PascalStr, VoidPtr} {
		if _, ok := WITType(c); ok {
			t.Errorf("WITType(%v) should have no mapping", c)
		}
	}
	if p, ok := WITType(UShort); !ok || p != WITU16 {
		t.Errorf("WITType(H) = %v, %v", p, ok)
	}
}

func TestIRPrimBits(t *testing.T) {
	tests := map[IRPrim]int{
		IRInt1: 1, IRInt8: 8, IRInt16: 16, IRInt32: 32, IRInt64: 64,
		IRFloat: 0, IRBytePtr: 0,
	}
	for p, want := range tests {
		if p.Bits() != want {
			t.Errorf("%v.Bits() = %d, want %d", p, p.Bits(), want)
		}
	}
}
