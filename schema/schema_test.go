package schema

import (
	"errors"
	"strings"
	"testing"

	lterrors "github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
)

func TestHelperTypeStrings(t *testing.T) {
	tests := []struct {
		f    *Field
		want string
	}{
		{UBInt8("x"), ">B"},
		{UBInt16("x"), ">H"},
		{UBInt32("x"), ">I"},
		{UBInt64("x"), ">Q"},
		{SBInt8("x"), ">b"},
		{SBInt16("x"), ">h"},
		{SBInt32("x"), ">i"},
		{SBInt64("x"), ">q"},
		{ULInt16("x"), "<H"},
		{SLInt16("x"), "<h"},
		{SLInt64("x"), "<q"},
		{UNInt32("x"), "=I"},
		{SNInt8("x"), "=b"},
		{BFloat32("x"), ">f"},
		{LFloat64("x"), "<d"},
		{NFloat32("x"), "=f"},
		{Bool("x"), "=?"},
		{Byte("x"), ">B"},
		{Char("x"), "=c"},
		{Int16("x"), "=h"},
		{UInt64("x"), "=Q"},
		{Float64("x"), "=d"},
	}
	for _, tt := range tests {
		if got := tt.f.TypeString(); got != tt.want {
			t.Errorf("TypeString = %q, want %q", got, tt.want)
		}
		if tt.f.Name() != "x" {
			t.Errorf("Name = %q", tt.f.Name())
		}
	}
}

func TestHelpersRegistry(t *testing.T) {
	for name, fn := range Helpers {
		f := fn("v")
		if f == nil || f.Name() != "v" {
			t.Errorf("%s produced %v", name, f)
		}
	}
	if Helpers["UBInt16"]("a").TypeString() != ">H" {
		t.Error("UBInt16 helper mismatch")
	}
}

func TestNewField(t *testing.T) {
	f, err := NewField("n", format.Little, format.UShort)
	if err != nil {
		t.Fatal(err)
	}
	if f.Endianness() != format.Little || f.Format() != format.UShort {
		t.Errorf("got %v %v", f.Endianness(), f.Format())
	}

	if _, err := NewField("n", format.Endianness('!'), format.Int); !errors.Is(err, lterrors.ErrMalformedSchema) {
		t.Errorf("bad endianness: got %v", err)
	}
	if _, err := NewField("n", format.Big, format.Code('x')); !errors.Is(err, lterrors.ErrMalformedSchema) {
		t.Errorf("bad code: got %v", err)
	}
}

func TestStructKeepsOrder(t *testing.T) {
	fields := []Type{Bool("a"), Int8("b"), Float32("c")}
	s, err := NewStruct("mystruct", fields...)
	if err != nil {
		t.Fatal(err)
	}

	fields[0] = Int64("mutated")
	got := s.Fields()
	if len(got) != 3 || s.Len() != 3 {
		t.Fatalf("len = %d", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Name() != want {
			t.Errorf("field %d = %q, want %q", i, got[i].Name(), want)
		}
	}

	got[1] = nil
	if s.Field(1) == nil {
		t.Error("Fields must return a copy")
	}

	if _, err := NewStruct("bad", Bool("a"), nil); !errors.Is(err, lterrors.ErrMalformedSchema) {
		t.Errorf("nil member: got %v", err)
	}
}

func TestSequence(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		s, err := NewSequence("arr", Int8("a"), 128)
		if err != nil {
			t.Fatal(err)
		}
		if s.Len() != 128 || s.Elem().Name() != "a" || s.Name() != "arr" {
			t.Errorf("got %v len %d", s, s.Len())
		}
	})

	t.Run("zero length", func(t *testing.T) {
		if _, err := NewSequence("empty", Int8("a"), 0); err != nil {
			t.Errorf("zero length should be valid: %v", err)
		}
	})

	t.Run("negative length", func(t *testing.T) {
		_, err := NewSequence("arr", Int8("a"), -1)
		if !errors.Is(err, lterrors.ErrMalformedSchema) {
			t.Fatalf("got %v", err)
		}
		var e *lterrors.Error
		if !errors.As(err, &e) || e.Value != -1 {
			t.Errorf("error should carry the length: %#v", e)
		}
	})

	t.Run("nil element", func(t *testing.T) {
		if _, err := NewSequence("arr", nil, 3); !errors.Is(err, lterrors.ErrMalformedSchema) {
			t.Errorf("got %v", err)
		}
	})

	t.Run("name falls back to element", func(t *testing.T) {
		s, _ := NewSequence("", Int8("a"), 4)
		if s.Name() != "a" {
			t.Errorf("Name = %q, want a", s.Name())
		}
	})
}

func TestVector(t *testing.T) {
	for _, w := range VectorWidths {
		v, err := NewVector(Float32("lane"), w)
		if err != nil {
			t.Errorf("width %d: %v", w, err)
			continue
		}
		if v.Width() != w || v.Name() != "lane" {
			t.Errorf("got %v width %d", v, v.Width())
		}
	}

	for _, w := range []int{0, 1, 3, 5, 16, -4} {
		_, err := NewVector(Float32("lane"), w)
		if !errors.Is(err, lterrors.ErrMalformedSchema) {
			t.Errorf("width %d: got %v, want malformed schema", w, err)
		}
	}

	st, _ := NewStruct("s", Int8("a"))
	if _, err := NewVector(st, 4); !errors.Is(err, lterrors.ErrMalformedSchema) {
		t.Errorf("non-scalar element: got %v", err)
	}
	if _, err := NewVector(nil, 4); !errors.Is(err, lterrors.ErrMalformedSchema) {
		t.Errorf("nil element: got %v", err)
	}
}

func TestEnum(t *testing.T) {
	e, err := NewEnum("bar",
		Symbol{Name: "X", Value: 1},
		Symbol{Name: "Y", Value: 2},
		Symbol{Name: "Z", Value: 3},
	)
	if err != nil {
		t.Fatal(err)
	}

	syms := e.Symbols()
	if len(syms) != 3 || syms[1].Name != "Y" {
		t.Fatalf("symbols = %v", syms)
	}
	if v, ok := syms.Lookup("Z"); !ok || v != 3 {
		t.Errorf("Lookup(Z) = %d, %v", v, ok)
	}
	if n, ok := syms.NameOf(2); !ok || n != "Y" {
		t.Errorf("NameOf(2) = %q, %v", n, ok)
	}
	if _, ok := syms.NameOf(99); ok {
		t.Error("NameOf(99) should miss")
	}
	if m := syms.Map(); len(m) != 3 || m["X"] != 1 {
		t.Errorf("Map = %v", m)
	}
	if e.Index().TypeString() != "=B" {
		t.Errorf("index = %s", e.Index().TypeString())
	}
	if e.Contiguous() {
		t.Error("1,2,3 is not contiguous from zero")
	}

	syms[0].Name = "mutated"
	if e.Symbols()[0].Name != "X" {
		t.Error("Symbols must return a copy")
	}

	c, _ := NewEnum("c", Symbol{Name: "A", Value: 0}, Symbol{Name: "B", Value: 1})
	if !c.Contiguous() {
		t.Error("0,1 should be contiguous")
	}

	dupValues, err := NewEnum("d", Symbol{Name: "A", Value: 1}, Symbol{Name: "B", Value: 1})
	if err != nil {
		t.Errorf("duplicate values are allowed: %v", err)
	}
	if n, _ := dupValues.Symbols().NameOf(1); n != "A" {
		t.Errorf("first declared symbol wins, got %q", n)
	}

	bad := []struct {
		name string
		syms []Symbol
	}{
		{"empty name", []Symbol{{Name: "", Value: 1}}},
		{"duplicate name", []Symbol{{Name: "A", Value: 1}, {Name: "A", Value: 2}}},
		{"too large", []Symbol{{Name: "A", Value: 256}}},
		{"negative", []Symbol{{Name: "A", Value: -1}}},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewEnum("e", tt.syms...); !errors.Is(err, lterrors.ErrMalformedSchema) {
				t.Errorf("got %v", err)
			}
		})
	}
}

func TestPointerNaming(t *testing.T) {
	p := NewPointer(Byte("data"))
	if p.Name() != "data" {
		t.Errorf("Name = %q", p.Name())
	}
	if NewPointer(nil).Name() != "" {
		t.Error("opaque pointer should have an empty name")
	}
	if got := p.String(); got != `Pointer("data")` {
		t.Errorf("String = %s", got)
	}
}

func TestStrings(t *testing.T) {
	fs, err := FixedString("foo", 35)
	if err != nil {
		t.Fatal(err)
	}
	if fs.Len() != 35 || fs.Elem().(*Field).Format() != format.Char {
		t.Errorf("FixedString = %v", fs)
	}
	if _, err := FixedString("foo", -1); err == nil {
		t.Error("negative fixed string length should fail")
	}

	cs := CString("s")
	if cs.Terminator() != 0 || cs.Kind() != KindTerminatedString {
		t.Errorf("CString = %v", cs)
	}
	if NewVariableString("v").Kind() != KindVariableString {
		t.Error("wrong kind")
	}
}

func TestArrayHeaders(t *testing.T) {
	c, err := ArrayC("foo", UNInt8, 3)
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 2 {
		t.Fatalf("ArrayC fields = %d", c.Len())
	}
	if p, ok := c.Field(0).(*Pointer); !ok || p.Name() != "data" {
		t.Errorf("field 0 = %v", c.Field(0))
	}
	if s, ok := c.Field(1).(*Sequence); !ok || s.Len() != 3 || s.Name() != "shape" {
		t.Errorf("field 1 = %v", c.Field(1))
	}

	s, err := ArrayS("foo", UNInt8, 2)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 || s.Field(2).Name() != "strides" {
		t.Errorf("ArrayS = %v", s.Fields())
	}

	if _, err := ArrayF("foo", UNInt8, -1); !errors.Is(err, lterrors.ErrMalformedSchema) {
		t.Errorf("negative rank: %v", err)
	}
}

func TestWalk(t *testing.T) {
	inner, _ := NewStruct("inner", Int8("x"), Float32("y"))
	seq, _ := NewSequence("items", inner, 4)
	u, _ := NewUnion("u", UInt8("tag"), Int32("i"), Float32("f"))
	root, _ := NewStruct("root", seq, u, NewPointer(nil))

	var visited []string
	Walk(root, func(t Type, path []string, depth int) bool {
		visited = append(visited, strings.Join(path, "."))
		return true
	})

	want := []string{
		"root",
		"root.items",
		"root.items.inner",
		"root.items.inner.x",
		"root.items.inner.y",
		"root.u",
		"root.u.tag",
		"root.u.i",
		"root.u.f",
		"root.",
	}
	if strings.Join(visited, "|") != strings.Join(want, "|") {
		t.Errorf("visited\n%v\nwant\n%v", visited, want)
	}

	if Count(root) != len(want) {
		t.Errorf("Count = %d, want %d", Count(root), len(want))
	}

	var skipped int
	Walk(root, func(t Type, path []string, depth int) bool {
		skipped++
		return t.Kind() != KindSequence
	})
	if skipped != len(want)-3 {
		t.Errorf("skip children: visited %d", skipped)
	}
}

func TestKindString(t *testing.T) {
	if KindTerminatedString.String() != "TerminatedString" {
		t.Error(KindTerminatedString.String())
	}
	if Kind(200).String() != "unknown" {
		t.Error("out of range kind")
	}
	if !KindUnion.IsComposite() || KindEnum.IsComposite() {
		t.Error("IsComposite")
	}
}
