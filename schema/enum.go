package schema

import (
	"strconv"

	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
)

// EnumIndexMax is the largest value the one-byte enum index can hold.
const EnumIndexMax = 0xff

// Symbol is one named constant of an Enum.
type Symbol struct {
	Name  string
	Value int64
}

// SymbolTable is an ordered symbol to value mapping.
type SymbolTable []Symbol

// Lookup returns the value bound to name.
func (t SymbolTable) Lookup(name string) (int64, bool) {
	for _, s := range t {
		if s.Name == name {
			return s.Value, true
		}
	}
	return 0, false
}

// NameOf returns the first symbol declared with value.
func (t SymbolTable) NameOf(value int64) (string, bool) {
	for _, s := range t {
		if s.Value == value {
			return s.Name, true
		}
	}
	return "", false
}

// Map returns the table as a plain map.
func (t SymbolTable) Map() map[string]int64 {
	m := make(map[string]int64, len(t))
	for _, s := range t {
		m[s.Name] = s.Value
	}
	return m
}

// Enum is a named integer constant set backed by a one-byte index.
type Enum struct {
	index   *Field
	name    string
	symbols SymbolTable
}

// NewEnum creates an enum over the symbols in declaration order. Values
// need not be contiguous or distinct but must fit the index.
func NewEnum(name string, symbols ...Symbol) (*Enum, error) {
	seen := make(map[string]struct{}, len(symbols))
	for i, s := range symbols {
		if s.Name == "" {
			return nil, errors.MalformedSchema([]string{name}, i,
				"enum symbol "+strconv.Itoa(i)+" has no name")
		}
		if _, dup := seen[s.Name]; dup {
			return nil, errors.MalformedSchema([]string{name, s.Name}, s.Name,
				"duplicate enum symbol "+strconv.Quote(s.Name))
		}
		seen[s.Name] = struct{}{}
		if s.Value < 0 || s.Value > EnumIndexMax {
			return nil, errors.MalformedSchema([]string{name, s.Name}, s.Value,
				"enum value "+strconv.FormatInt(s.Value, 10)+" does not fit the one-byte index")
		}
	}
	return &Enum{
		name:    name,
		index:   newField(name, format.Native, format.UByte),
		symbols: append(SymbolTable(nil), symbols...),
	}, nil
}

func (e *Enum) Name() string   { return e.name }
func (e *Enum) Kind() Kind     { return KindEnum }
func (e *Enum) String() string { return render(KindEnum, e.name) }
func (e *Enum) isType()        {}

// Index is the scalar backing the enum.
func (e *Enum) Index() *Field { return e.index }

// Symbols returns a copy of the symbol table.
func (e *Enum) Symbols() SymbolTable {
	return append(SymbolTable(nil), e.symbols...)
}

// Contiguous reports whether the values are exactly 0..n-1 in declaration
// order.
func (e *Enum) Contiguous() bool {
	for i, s := range e.symbols {
		if s.Value != int64(i) {
			return false
		}
	}
	return true
}
