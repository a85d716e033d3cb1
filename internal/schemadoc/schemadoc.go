package schemadoc

import (
	"os"
	"strconv"

	"sigs.k8s.io/yaml"

	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
	"github.com/wippyai/lltypes/schema"
)

// Node kinds as written in documents.
const (
	KindField            = "field"
	KindStruct           = "struct"
	KindUnion            = "union"
	KindEnum             = "enum"
	KindSequence         = "sequence"
	KindVector           = "vector"
	KindPointer          = "pointer"
	KindVariableString   = "vstring"
	KindTerminatedString = "cstring"
)

// Node is the document form of one schema node.
type Node struct {
	Kind       string   `json:"kind"`
	Name       string   `json:"name,omitempty"`
	Type       string   `json:"type,omitempty"`
	Format     string   `json:"format,omitempty"`
	Order      string   `json:"order,omitempty"`
	Length     *int     `json:"length,omitempty"`
	Width      int      `json:"width,omitempty"`
	Terminator *int     `json:"terminator,omitempty"`
	Elem       *Node    `json:"elem,omitempty"`
	Tag        *Node    `json:"tag,omitempty"`
	Fields     []Node   `json:"fields,omitempty"`
	Options    []Node   `json:"options,omitempty"`
	Symbols    []Symbol `json:"symbols,omitempty"`
}

// Symbol is an enum entry.
type Symbol struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// Parse decodes a YAML or JSON document and builds its schema.
func Parse(data []byte) (schema.Type, error) {
	var n Node
	if err := yaml.UnmarshalStrict(data, &n); err != nil {
		return nil, errors.ParseFailed("schema document", err)
	}
	return Build(&n)
}

// ParseFile reads and parses the document at path.
func ParseFile(path string) (schema.Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ParseFailed(path, err)
	}
	return Parse(data)
}

// Build constructs the schema a node describes.
func Build(n *Node) (schema.Type, error) {
	return build(n, nil)
}

func build(n *Node, path []string) (schema.Type, error) {
	if n == nil {
		return nil, errors.InvalidInput(errors.PhaseParse, path, "missing node")
	}
	path = append(path[:len(path):len(path)], n.Name)

	switch n.Kind {
	case KindField:
		return buildField(n, path)

	case KindStruct:
		fields, err := buildAll(n.Fields, path)
		if err != nil {
			return nil, err
		}
		s, err := schema.NewStruct(n.Name, fields...)
		return result(s, err, path)

	case KindUnion:
		var tag schema.Type
		if n.Tag != nil {
			t, err := build(n.Tag, path)
			if err != nil {
				return nil, err
			}
			tag = t
		}
		options, err := buildAll(n.Options, path)
		if err != nil {
			return nil, err
		}
		u, err := schema.NewUnion(n.Name, tag, options...)
		return result(u, err, path)

	case KindEnum:
		symbols := make([]schema.Symbol, len(n.Symbols))
		for i, s := range n.Symbols {
			symbols[i] = schema.Symbol{Name: s.Name, Value: s.Value}
		}
		e, err := schema.NewEnum(n.Name, symbols...)
		return result(e, err, path)

	case KindSequence:
		if n.Length == nil {
			return nil, errors.InvalidInput(errors.PhaseParse, path, "sequence needs a length")
		}
		elem, err := build(n.Elem, path)
		if err != nil {
			return nil, err
		}
		seq, err := schema.NewSequence(n.Name, elem, *n.Length)
		return result(seq, err, path)

	case KindVector:
		elem, err := build(n.Elem, path)
		if err != nil {
			return nil, err
		}
		v, err := schema.NewVector(elem, n.Width)
		return result(v, err, path)

	case KindPointer:
		if n.Elem == nil {
			return schema.NewPointer(nil), nil
		}
		elem, err := build(n.Elem, path)
		if err != nil {
			return nil, err
		}
		return schema.NewPointer(elem), nil

	case KindVariableString:
		return schema.NewVariableString(n.Name), nil

	case KindTerminatedString:
		var term byte
		if n.Terminator != nil {
			if *n.Terminator < 0 || *n.Terminator > 0xff {
				return nil, errors.InvalidInput(errors.PhaseParse, path,
					"terminator "+strconv.Itoa(*n.Terminator)+" is not a byte")
			}
			term = byte(*n.Terminator)
		}
		return schema.NewTerminatedString(n.Name, term), nil

	default:
		return nil, errors.InvalidInput(errors.PhaseParse, path, "unknown kind "+strconv.Quote(n.Kind))
	}
}

func buildField(n *Node, path []string) (schema.Type, error) {
	if n.Type != "" {
		if n.Format != "" || n.Order != "" {
			return nil, errors.InvalidInput(errors.PhaseParse, path, "field sets both type and format")
		}
		fn, ok := schema.Helpers[n.Type]
		if !ok {
			return nil, errors.InvalidInput(errors.PhaseParse, path, "unknown field type "+strconv.Quote(n.Type))
		}
		return fn(n.Name), nil
	}

	if len(n.Format) != 1 {
		return nil, errors.InvalidInput(errors.PhaseParse, path, "field needs a type or a one-character format")
	}
	order := format.Native
	if n.Order != "" {
		if len(n.Order) != 1 {
			return nil, errors.InvalidInput(errors.PhaseParse, path, "order must be one of > < =")
		}
		order = format.Endianness(n.Order[0])
	}
	f, err := schema.NewField(n.Name, order, format.Code(n.Format[0]))
	return result(f, err, path)
}

func buildAll(nodes []Node, path []string) ([]schema.Type, error) {
	out := make([]schema.Type, len(nodes))
	for i := range nodes {
		t, err := build(&nodes[i], path)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// result places the document path in front of a construction error.
func result[T schema.Type](t T, err error, path []string) (schema.Type, error) {
	if err != nil {
		return nil, errors.Prepend(err, path[:len(path)-1]...)
	}
	return t, nil
}
