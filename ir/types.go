package ir

import (
	"strconv"
	"strings"
)

// Type is an IR type.
type Type interface {
	String() string
	irType()
}

// IntType is a signless integer of Bits width.
type IntType struct {
	Bits int
}

func (t *IntType) String() string { return "i" + strconv.Itoa(t.Bits) }
func (t *IntType) irType()        {}

// FloatType is an IEEE float of 32 or 64 bits.
type FloatType struct {
	Bits int
}

func (t *FloatType) String() string {
	if t.Bits == 64 {
		return "double"
	}
	return "float"
}
func (t *FloatType) irType() {}

type PointerType struct {
	Elem Type
}

func (t *PointerType) String() string { return t.Elem.String() + "*" }
func (t *PointerType) irType()        {}

type ArrayType struct {
	Elem Type
	Len  int
}

func (t *ArrayType) String() string {
	return "[" + strconv.Itoa(t.Len) + " x " + t.Elem.String() + "]"
}
func (t *ArrayType) irType() {}

type VectorType struct {
	Elem  Type
	Width int
}

func (t *VectorType) String() string {
	return "<" + strconv.Itoa(t.Width) + " x " + t.Elem.String() + ">"
}
func (t *VectorType) irType() {}

// StructType is a sequential aggregate. An empty Name makes it literal.
type StructType struct {
	Name   string
	Fields []Type
}

func (t *StructType) String() string {
	if t.Name != "" {
		return "%" + t.Name
	}
	return t.Body()
}

// Body returns the member list, e.g. "{ i1, i8, float }".
func (t *StructType) Body() string {
	return body(t.Fields)
}

func (t *StructType) irType() {}

// UnionType overlays its members on one region.
type UnionType struct {
	Name    string
	Members []Type
}

func (t *UnionType) String() string {
	if t.Name != "" {
		return "%" + t.Name
	}
	return t.Body()
}

func (t *UnionType) Body() string {
	return "union " + body(t.Members)
}

func (t *UnionType) irType() {}

func body(types []Type) string {
	if len(types) == 0 {
		return "{}"
	}
	parts := make([]string, len(types))
	for i, m := range types {
		parts[i] = m.String()
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// Shared primitives.
var (
	I1     = &IntType{Bits: 1}
	I8     = &IntType{Bits: 8}
	I16    = &IntType{Bits: 16}
	I32    = &IntType{Bits: 32}
	I64    = &IntType{Bits: 64}
	Float  = &FloatType{Bits: 32}
	Double = &FloatType{Bits: 64}
)

// Int returns the integer type of the given width.
func Int(bits int) *IntType {
	switch bits {
	case 1:
		return I1
	case 8:
		return I8
	case 16:
		return I16
	case 32:
		return I32
	case 64:
		return I64
	default:
		return &IntType{Bits: bits}
	}
}

// Pointer returns a pointer to elem.
func Pointer(elem Type) *PointerType {
	return &PointerType{Elem: elem}
}

// Definitions returns "%name = type <body>" for every named aggregate
// reachable from t, innermost first. Structurally equal aggregates share
// one definition; a different aggregate reusing a name is renamed with a
// numeric suffix, e.g. %p.1.
func Definitions(t Type) []string {
	defs, _ := Declare(t)
	return defs
}

// Declare returns the definitions reachable from t and the reference to
// t that is consistent with them.
func Declare(t Type) (defs []string, ref string) {
	d := &definer{
		names:  make(map[Type]string),
		bodies: make(map[string]Type),
	}
	d.visit(t)
	return d.out, d.ref(t)
}

type definer struct {
	names  map[Type]string // aggregate -> definition name
	bodies map[string]Type // definition name -> aggregate defined under it
	out    []string
}

func (d *definer) visit(t Type) {
	switch v := t.(type) {
	case *PointerType:
		d.visit(v.Elem)
	case *ArrayType:
		d.visit(v.Elem)
	case *VectorType:
		d.visit(v.Elem)
	case *StructType:
		for _, f := range v.Fields {
			d.visit(f)
		}
		d.define(v, v.Name, "", v.Fields)
	case *UnionType:
		for _, m := range v.Members {
			d.visit(m)
		}
		d.define(v, v.Name, "union ", v.Members)
	}
}

func (d *definer) define(t Type, name, prefix string, members []Type) {
	if name == "" {
		return
	}
	if _, ok := d.names[t]; ok {
		return
	}
	def := name
	for n := 1; ; n++ {
		prev, taken := d.bodies[def]
		if !taken {
			break
		}
		if Equal(prev, t) {
			d.names[t] = def
			return
		}
		def = name + "." + strconv.Itoa(n)
	}
	d.names[t] = def
	d.bodies[def] = t
	d.out = append(d.out, "%"+def+" = type "+prefix+d.body(members))
}

func (d *definer) body(types []Type) string {
	if len(types) == 0 {
		return "{}"
	}
	parts := make([]string, len(types))
	for i, m := range types {
		parts[i] = d.ref(m)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

func (d *definer) ref(t Type) string {
	switch v := t.(type) {
	case *PointerType:
		return d.ref(v.Elem) + "*"
	case *ArrayType:
		return "[" + strconv.Itoa(v.Len) + " x " + d.ref(v.Elem) + "]"
	case *VectorType:
		return "<" + strconv.Itoa(v.Width) + " x " + d.ref(v.Elem) + ">"
	case *StructType:
		if name, ok := d.names[v]; ok {
			return "%" + name
		}
		return d.body(v.Fields)
	case *UnionType:
		if name, ok := d.names[v]; ok {
			return "%" + name
		}
		return "union " + d.body(v.Members)
	default:
		return t.String()
	}
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Type) bool {
	switch x := a.(type) {
	case *IntType:
		y, ok := b.(*IntType)
		return ok && x.Bits == y.Bits
	case *FloatType:
		y, ok := b.(*FloatType)
		return ok && x.Bits == y.Bits
	case *PointerType:
		y, ok := b.(*PointerType)
		return ok && Equal(x.Elem, y.Elem)
	case *ArrayType:
		y, ok := b.(*ArrayType)
		return ok && x.Len == y.Len && Equal(x.Elem, y.Elem)
	case *VectorType:
		y, ok := b.(*VectorType)
		return ok && x.Width == y.Width && Equal(x.Elem, y.Elem)
	case *StructType:
		y, ok := b.(*StructType)
		return ok && x.Name == y.Name && equalAll(x.Fields, y.Fields)
	case *UnionType:
		y, ok := b.(*UnionType)
		return ok && x.Name == y.Name && equalAll(x.Members, y.Members)
	default:
		return false
	}
}

func equalAll(a, b []Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
