package native

import (
	"strconv"

	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
	"github.com/wippyai/lltypes/internal/abi"
)

// Type is a native foreign-call type with a byte-accurate layout.
type Type interface {
	Size() uintptr
	Align() uintptr
	String() string
	nativeType()
}

// Scalar is a C primitive stored in Order.
type Scalar struct {
	C       format.CType
	Order   format.Endianness
	size    uintptr
	align   uintptr
	swapped bool
}

// NewScalar lays out a primitive for abi. order may be format.Native.
func NewScalar(a ABI, c format.CType, order format.Endianness) *Scalar {
	resolved := a.Order(order)
	return &Scalar{
		C:       c,
		Order:   resolved,
		size:    a.Sizeof(c),
		align:   a.Alignof(c),
		swapped: resolved != a.Order(format.Native) && a.Sizeof(c) > 1,
	}
}

func (s *Scalar) Size() uintptr  { return s.size }
func (s *Scalar) Align() uintptr { return s.align }
func (s *Scalar) nativeType()    {}

// Swapped reports whether the scalar is stored in the non-native order.
func (s *Scalar) Swapped() bool { return s.swapped }

// String is the ctypes spelling, with a _be/_le suffix when swapped.
func (s *Scalar) String() string {
	if !s.swapped {
		return s.C.String()
	}
	if s.Order == format.Big {
		return s.C.String() + "_be"
	}
	return s.C.String() + "_le"
}

// Field is a member at a byte offset.
type Field struct {
	Type   Type
	Name   string
	Offset uintptr
}

// Member is a field before offsets are assigned.
type Member struct {
	Type Type
	Name string
}

// Struct lays members out sequentially with C alignment padding.
type Struct struct {
	Name   string
	Fields []Field
	size   uintptr
	align  uintptr
}

// NewStruct lays out members with C padding and fails if the size overflows.
func NewStruct(name string, members []Member) (*Struct, error) {
	s := &Struct{Name: name, Fields: make([]Field, len(members)), align: 1}
	var offset uintptr
	for i, m := range members {
		offset = abi.AlignTo(offset, m.Type.Align())
		s.Fields[i] = Field{Name: m.Name, Type: m.Type, Offset: offset}
		if m.Type.Align() > s.align {
			s.align = m.Type.Align()
		}
		next, ok := abi.SafeAdd(offset, m.Type.Size())
		if !ok {
			return nil, overflow(name)
		}
		offset = next
	}
	s.size = abi.AlignTo(offset, s.align)
	if s.size > abi.MaxSize {
		return nil, overflow(name)
	}
	return s, nil
}

func (s *Struct) Size() uintptr  { return s.size }
func (s *Struct) Align() uintptr { return s.align }
func (s *Struct) String() string { return "struct " + s.Name }
func (s *Struct) nativeType()    {}

// Union overlays every member at offset 0.
type Union struct {
	Name   string
	Fields []Field
	size   uintptr
	align  uintptr
}

func NewUnion(name string, members []Member) *Union {
	u := &Union{Name: name, Fields: make([]Field, len(members)), align: 1}
	var size uintptr
	for i, m := range members {
		u.Fields[i] = Field{Name: m.Name, Type: m.Type}
		if m.Type.Size() > size {
			size = m.Type.Size()
		}
		if m.Type.Align() > u.align {
			u.align = m.Type.Align()
		}
	}
	u.size = abi.AlignTo(size, u.align)
	return u
}

func (u *Union) Size() uintptr  { return u.size }
func (u *Union) Align() uintptr { return u.align }
func (u *Union) String() string { return "union " + u.Name }
func (u *Union) nativeType()    {}

// Array is Len contiguous elements.
type Array struct {
	Elem Type
	Len  int
	size uintptr
}

func NewArray(elem Type, length int) (*Array, error) {
	size, ok := abi.SafeMul(elem.Size(), uintptr(length))
	if !ok || length < 0 {
		return nil, overflow(elem.String() + " * " + strconv.Itoa(length))
	}
	return &Array{Elem: elem, Len: length, size: size}, nil
}

func (a *Array) Size() uintptr  { return a.size }
func (a *Array) Align() uintptr { return a.Elem.Align() }
func (a *Array) String() string { return a.Elem.String() + " * " + strconv.Itoa(a.Len) }
func (a *Array) nativeType()    {}

// Pointer is a data pointer. A nil Elem is void *.
type Pointer struct {
	Elem Type
	size uintptr
}

func NewPointer(a ABI, elem Type) *Pointer {
	return &Pointer{Elem: elem, size: a.PointerSize}
}

func (p *Pointer) Size() uintptr  { return p.size }
func (p *Pointer) Align() uintptr { return p.size }
func (p *Pointer) nativeType()    {}

func (p *Pointer) String() string {
	if p.Elem == nil {
		return "c_void_p"
	}
	return "POINTER(" + p.Elem.String() + ")"
}

func overflow(what string) *errors.Error {
	return errors.New(errors.PhaseNative, errors.KindNoNativeMapping).
		Target(what).
		Detail("layout size exceeds %d bytes", abi.MaxSize).
		Build()
}
