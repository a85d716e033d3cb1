package schema

import (
	"strconv"

	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
)

// Type is a node of a schema tree. The set of implementations is closed;
// lowering dispatches on the concrete type.
type Type interface {
	Name() string
	Kind() Kind
	String() string
	isType()
}

func render(k Kind, name string) string {
	return k.String() + "(" + strconv.Quote(name) + ")"
}

// Field is a scalar primitive.
type Field struct {
	name  string
	order format.Endianness
	code  format.Code
}

// NewField creates a scalar with the given byte order and format code.
func NewField(name string, order format.Endianness, code format.Code) (*Field, error) {
	if !order.Valid() {
		return nil, errors.MalformedSchema([]string{name}, byte(order),
			"endianness must be one of '>', '<', '='")
	}
	if !code.Valid() {
		return nil, errors.MalformedSchema([]string{name}, byte(code),
			"unknown format code "+strconv.QuoteRune(rune(code)))
	}
	return &Field{name: name, order: order, code: code}, nil
}

func newField(name string, order format.Endianness, code format.Code) *Field {
	return &Field{name: name, order: order, code: code}
}

func (f *Field) Name() string                  { return f.name }
func (f *Field) Kind() Kind                    { return KindField }
func (f *Field) String() string                { return render(KindField, f.name) }
func (f *Field) Endianness() format.Endianness { return f.order }
func (f *Field) Format() format.Code           { return f.code }
func (f *Field) isType()                       {}

// TypeString returns the array type string, e.g. ">H".
func (f *Field) TypeString() string {
	return format.TypeString(f.order, f.code)
}

// Struct is an ordered aggregate.
type Struct struct {
	name   string
	fields []Type
}

// NewStruct creates a struct whose members keep the given order.
func NewStruct(name string, fields ...Type) (*Struct, error) {
	for i, f := range fields {
		if f == nil {
			return nil, errors.MalformedSchema([]string{name}, i,
				"struct member "+strconv.Itoa(i)+" is nil")
		}
	}
	return &Struct{name: name, fields: append([]Type(nil), fields...)}, nil
}

func (s *Struct) Name() string   { return s.name }
func (s *Struct) Kind() Kind     { return KindStruct }
func (s *Struct) String() string { return render(KindStruct, s.name) }
func (s *Struct) Len() int       { return len(s.fields) }
func (s *Struct) Field(i int) Type {
	return s.fields[i]
}
func (s *Struct) isType() {}

// Fields returns a copy of the members in declaration order.
func (s *Struct) Fields() []Type {
	return append([]Type(nil), s.fields...)
}

// Union overlays its options on one storage region. The tag is the
// discriminant the caller lays out next to the union; it is not part of
// the overlay.
type Union struct {
	tag     Type
	name    string
	options []Type
}

// NewUnion creates a union of options discriminated by tag.
func NewUnion(name string, tag Type, options ...Type) (*Union, error) {
	for i, o := range options {
		if o == nil {
			return nil, errors.MalformedSchema([]string{name}, i,
				"union option "+strconv.Itoa(i)+" is nil")
		}
	}
	return &Union{name: name, tag: tag, options: append([]Type(nil), options...)}, nil
}

func (u *Union) Name() string   { return u.name }
func (u *Union) Kind() Kind     { return KindUnion }
func (u *Union) String() string { return render(KindUnion, u.name) }
func (u *Union) Tag() Type      { return u.tag }
func (u *Union) Len() int       { return len(u.options) }
func (u *Union) Option(i int) Type {
	return u.options[i]
}
func (u *Union) isType() {}

// Options returns a copy of the options in declaration order.
func (u *Union) Options() []Type {
	return append([]Type(nil), u.options...)
}

// Sequence is a fixed-length repetition of one element type.
type Sequence struct {
	elem   Type
	name   string
	length int
}

// NewSequence creates a sequence. The length must be non-negative.
func NewSequence(name string, elem Type, length int) (*Sequence, error) {
	if elem == nil {
		return nil, errors.MalformedSchema([]string{name}, nil, "sequence element is nil")
	}
	if length < 0 {
		return nil, errors.MalformedSchema([]string{name}, length,
			"sequence length must be non-negative, got "+strconv.Itoa(length))
	}
	return &Sequence{name: name, elem: elem, length: length}, nil
}

// Name is the declared name, or the element's name when none was declared.
func (s *Sequence) Name() string {
	if s.name != "" {
		return s.name
	}
	return s.elem.Name()
}

func (s *Sequence) Kind() Kind     { return KindSequence }
func (s *Sequence) String() string { return render(KindSequence, s.Name()) }
func (s *Sequence) Elem() Type     { return s.elem }
func (s *Sequence) Len() int       { return s.length }
func (s *Sequence) isType()        {}

// VectorWidths are the lane counts a Vector may have.
var VectorWidths = []int{2, 4, 8}

// Vector is a SIMD vector of one scalar type.
type Vector struct {
	elem  *Field
	width int
}

// NewVector creates a vector. The element must be a scalar Field and the
// width one of VectorWidths.
func NewVector(elem Type, width int) (*Vector, error) {
	f, ok := elem.(*Field)
	if !ok || f == nil {
		return nil, errors.MalformedSchema(nil, elem, "vector element must be a scalar field")
	}
	switch width {
	case 2, 4, 8:
	default:
		return nil, errors.MalformedSchema([]string{f.Name()}, width,
			"vector width must be 2, 4 or 8, got "+strconv.Itoa(width))
	}
	return &Vector{elem: f, width: width}, nil
}

func (v *Vector) Name() string   { return v.elem.Name() }
func (v *Vector) Kind() Kind     { return KindVector }
func (v *Vector) String() string { return render(KindVector, v.Name()) }
func (v *Vector) Elem() *Field   { return v.elem }
func (v *Vector) Width() int     { return v.width }
func (v *Vector) isType()        {}

// Pointer is an indirection. A nil element is an opaque pointer.
type Pointer struct {
	elem Type
}

// NewPointer creates a pointer to elem; nil makes it opaque.
func NewPointer(elem Type) *Pointer {
	return &Pointer{elem: elem}
}

// Name is the pointee's name.
func (p *Pointer) Name() string {
	if p.elem == nil {
		return ""
	}
	return p.elem.Name()
}

func (p *Pointer) Kind() Kind     { return KindPointer }
func (p *Pointer) String() string { return render(KindPointer, p.Name()) }
func (p *Pointer) Elem() Type     { return p.elem }
func (p *Pointer) isType()        {}

// VariableString is a (pointer, length) string.
type VariableString struct {
	name string
}

func NewVariableString(name string) *VariableString {
	return &VariableString{name: name}
}

func (s *VariableString) Name() string   { return s.name }
func (s *VariableString) Kind() Kind     { return KindVariableString }
func (s *VariableString) String() string { return render(KindVariableString, s.name) }
func (s *VariableString) isType()        {}

// TerminatedString is a sentinel-terminated string.
type TerminatedString struct {
	name       string
	terminator byte
}

func NewTerminatedString(name string, terminator byte) *TerminatedString {
	return &TerminatedString{name: name, terminator: terminator}
}

func (s *TerminatedString) Name() string     { return s.name }
func (s *TerminatedString) Kind() Kind       { return KindTerminatedString }
func (s *TerminatedString) String() string   { return render(KindTerminatedString, s.name) }
func (s *TerminatedString) Terminator() byte { return s.terminator }
func (s *TerminatedString) isType()          {}
