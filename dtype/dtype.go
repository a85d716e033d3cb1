package dtype

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/wippyai/lltypes/format"
)

// Descr is an array element descriptor.
type Descr interface {
	// ItemSize is the element size in bytes using standard sizes.
	ItemSize() int
	String() string
	descr()
}

// Scalar is a primitive element.
type Scalar struct {
	Order format.Endianness
	Code  format.Code
}

func NewScalar(order format.Endianness, code format.Code) *Scalar {
	return &Scalar{Order: order, Code: code}
}

func (s *Scalar) ItemSize() int  { return s.Code.StandardSize() }
func (s *Scalar) String() string { return format.TypeString(s.Order, s.Code) }
func (s *Scalar) descr()         {}

// Field is a named member of a Record.
type Field struct {
	Type   Descr
	Name   string
	Offset int
}

// Record is a structured element. When Overlay is set every field starts
// at offset 0.
type Record struct {
	Fields  []Field
	Overlay bool
	size    int
}

// Member is a field before offsets are assigned.
type Member struct {
	Type Descr
	Name string
}

// NewRecord packs members back to back in the given order.
func NewRecord(members []Member) *Record {
	r := &Record{Fields: make([]Field, len(members))}
	offset := 0
	for i, m := range members {
		r.Fields[i] = Field{Name: m.Name, Type: m.Type, Offset: offset}
		offset += m.Type.ItemSize()
	}
	r.size = offset
	return r
}

// NewOverlay places every member at offset 0; the item size is the largest
// member.
func NewOverlay(members []Member) *Record {
	r := &Record{Fields: make([]Field, len(members)), Overlay: true}
	for i, m := range members {
		r.Fields[i] = Field{Name: m.Name, Type: m.Type}
		if sz := m.Type.ItemSize(); sz > r.size {
			r.size = sz
		}
	}
	return r
}

func (r *Record) ItemSize() int { return r.size }
func (r *Record) descr()        {}

// Names returns the field names in order.
func (r *Record) Names() []string {
	return lo.Map(r.Fields, func(f Field, _ int) string { return f.Name })
}

// Lookup returns the field called name.
func (r *Record) Lookup(name string) (Field, bool) {
	return lo.Find(r.Fields, func(f Field) bool { return f.Name == name })
}

func (r *Record) String() string {
	if r.Overlay {
		return r.dictString()
	}
	parts := lo.Map(r.Fields, func(f Field, _ int) string {
		if sub, ok := f.Type.(*Subarray); ok {
			return "(" + quote(f.Name) + ", " + formatRef(sub.Elem) + ", " + sub.shapeString() + ")"
		}
		return "(" + quote(f.Name) + ", " + formatRef(f.Type) + ")"
	})
	return "[" + strings.Join(parts, ", ") + "]"
}

func (r *Record) dictString() string {
	names := lo.Map(r.Fields, func(f Field, _ int) string { return quote(f.Name) })
	formats := lo.Map(r.Fields, func(f Field, _ int) string { return formatRef(f.Type) })
	offsets := lo.Map(r.Fields, func(f Field, _ int) string { return strconv.Itoa(f.Offset) })

	var b strings.Builder
	b.WriteString("{'names': [")
	b.WriteString(strings.Join(names, ", "))
	b.WriteString("], 'formats': [")
	b.WriteString(strings.Join(formats, ", "))
	b.WriteString("], 'offsets': [")
	b.WriteString(strings.Join(offsets, ", "))
	b.WriteString("], 'itemsize': ")
	b.WriteString(strconv.Itoa(r.size))
	b.WriteByte('}')
	return b.String()
}

// Subarray is a fixed-length run of one element.
type Subarray struct {
	Elem Descr
	Len  int
}

func NewSubarray(elem Descr, length int) *Subarray {
	return &Subarray{Elem: elem, Len: length}
}

func (s *Subarray) ItemSize() int { return s.Elem.ItemSize() * s.Len }
func (s *Subarray) descr()        {}

func (s *Subarray) String() string {
	return "(" + formatRef(s.Elem) + ", " + s.shapeString() + ")"
}

func (s *Subarray) shapeString() string {
	return "(" + strconv.Itoa(s.Len) + ",)"
}

// PlaceholderKind selects the host object a Placeholder stands for.
type PlaceholderKind uint8

const (
	PlaceholderBytes PlaceholderKind = iota
	PlaceholderString
)

// Placeholder is a flexible host type with no fixed element size.
type Placeholder struct {
	Kind PlaceholderKind
}

func NewPlaceholder(kind PlaceholderKind) *Placeholder {
	return &Placeholder{Kind: kind}
}

func (p *Placeholder) ItemSize() int { return 0 }
func (p *Placeholder) descr()        {}

func (p *Placeholder) String() string {
	if p.Kind == PlaceholderString {
		return "=U0"
	}
	return "|S0"
}

// formatRef renders a descriptor where numpy expects a format: scalars and
// placeholders are quoted type strings, composites are written inline.
func formatRef(d Descr) string {
	switch d.(type) {
	case *Scalar, *Placeholder:
		return quote(d.String())
	default:
		return d.String()
	}
}

func quote(s string) string {
	return "'" + s + "'"
}
