package native

import (
	"github.com/wippyai/lltypes/errors"
)

// Symbol is one named constant of an Enum.
type Symbol struct {
	Name  string
	Value int64
}

// Enum is an integer-backed named type with a fixed symbol table.
type Enum struct {
	Base    *Scalar
	Name    string
	symbols []Symbol
}

func NewEnum(name string, base *Scalar, symbols []Symbol) *Enum {
	return &Enum{Name: name, Base: base, symbols: append([]Symbol(nil), symbols...)}
}

func (e *Enum) Size() uintptr  { return e.Base.Size() }
func (e *Enum) Align() uintptr { return e.Base.Align() }
func (e *Enum) String() string { return "enum " + e.Name }
func (e *Enum) nativeType()    {}

// Symbols returns a copy of the symbol table in declaration order.
func (e *Enum) Symbols() []Symbol {
	return append([]Symbol(nil), e.symbols...)
}

// EnumValue is an instance of an Enum.
type EnumValue struct {
	Enum  *Enum
	Name  string
	Value int64
}

func (v EnumValue) String() string {
	return v.Enum.Name + "." + v.Name
}

// New constructs the instance holding value. The first symbol declared with
// that value names it; a value outside the table is a range violation.
func (e *Enum) New(value int64) (EnumValue, error) {
	for _, s := range e.symbols {
		if s.Value == value {
			return EnumValue{Enum: e, Name: s.Name, Value: value}, nil
		}
	}
	return EnumValue{}, errors.RangeViolation(e.Name, value)
}

// Lookup constructs the instance named name.
func (e *Enum) Lookup(name string) (EnumValue, bool) {
	for _, s := range e.symbols {
		if s.Name == name {
			return EnumValue{Enum: e, Name: s.Name, Value: s.Value}, true
		}
	}
	return EnumValue{}, false
}
