package schemadoc

import (
	"sigs.k8s.io/yaml"

	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/schema"
)

// Marshal renders t as a YAML document that Parse reads back.
func Marshal(t schema.Type) ([]byte, error) {
	n, err := FromSchema(t)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(n)
}

// FromSchema converts a schema tree to its document form. Fields are
// written by format and order.
func FromSchema(t schema.Type) (*Node, error) {
	switch v := t.(type) {
	case *schema.Field:
		return &Node{
			Kind:   KindField,
			Name:   v.Name(),
			Format: v.Format().String(),
			Order:  v.Endianness().String(),
		}, nil

	case *schema.Struct:
		fields, err := fromAll(v.Fields())
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindStruct, Name: v.Name(), Fields: fields}, nil

	case *schema.Union:
		n := &Node{Kind: KindUnion, Name: v.Name()}
		if v.Tag() != nil {
			tag, err := FromSchema(v.Tag())
			if err != nil {
				return nil, err
			}
			n.Tag = tag
		}
		options, err := fromAll(v.Options())
		if err != nil {
			return nil, err
		}
		n.Options = options
		return n, nil

	case *schema.Enum:
		n := &Node{Kind: KindEnum, Name: v.Name()}
		for _, s := range v.Symbols() {
			n.Symbols = append(n.Symbols, Symbol{Name: s.Name, Value: s.Value})
		}
		return n, nil

	case *schema.Sequence:
		elem, err := FromSchema(v.Elem())
		if err != nil {
			return nil, err
		}
		length := v.Len()
		name := v.Name()
		if name == elem.Name {
			name = ""
		}
		return &Node{Kind: KindSequence, Name: name, Length: &length, Elem: elem}, nil

	case *schema.Vector:
		elem, err := FromSchema(v.Elem())
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindVector, Width: v.Width(), Elem: elem}, nil

	case *schema.Pointer:
		n := &Node{Kind: KindPointer}
		if v.Elem() != nil {
			elem, err := FromSchema(v.Elem())
			if err != nil {
				return nil, err
			}
			n.Elem = elem
		}
		return n, nil

	case *schema.VariableString:
		return &Node{Kind: KindVariableString, Name: v.Name()}, nil

	case *schema.TerminatedString:
		n := &Node{Kind: KindTerminatedString, Name: v.Name()}
		if term := int(v.Terminator()); term != 0 {
			n.Terminator = &term
		}
		return n, nil

	default:
		return nil, errors.InvalidInput(errors.PhaseParse, nil, "cannot encode a nil or unknown schema node")
	}
}

func fromAll(types []schema.Type) ([]Node, error) {
	out := make([]Node, len(types))
	for i, t := range types {
		n, err := FromSchema(t)
		if err != nil {
			return nil, err
		}
		out[i] = *n
	}
	return out, nil
}
