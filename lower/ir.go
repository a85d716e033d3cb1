package lower

import (
	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
	"github.com/wippyai/lltypes/ir"
	"github.com/wippyai/lltypes/schema"
)

func (c *Compiler) ir(t schema.Type, path []string) (ir.Type, error) {
	path = extend(path, t)

	switch n := t.(type) {
	case *schema.Field:
		return c.irField(n, path)

	case *schema.Struct:
		fields, err := c.irAll(n.Fields(), path)
		if err != nil {
			return nil, err
		}
		return &ir.StructType{Name: n.Name(), Fields: fields}, nil

	case *schema.Union:
		members, err := c.irAll(n.Options(), path)
		if err != nil {
			return nil, err
		}
		return &ir.UnionType{Name: n.Name(), Members: members}, nil

	case *schema.Enum:
		return ir.I8, nil

	case *schema.Sequence:
		elem, err := c.ir(n.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &ir.ArrayType{Elem: elem, Len: n.Len()}, nil

	case *schema.Vector:
		elem, err := c.ir(n.Elem(), path)
		if err != nil {
			return nil, err
		}
		return &ir.VectorType{Elem: elem, Width: n.Width()}, nil

	case *schema.Pointer:
		if n.Elem() == nil {
			return ir.Pointer(ir.I8), nil
		}
		elem, err := c.ir(n.Elem(), path)
		if err != nil {
			return nil, err
		}
		return ir.Pointer(elem), nil

	case *schema.VariableString:
		bits := int(c.opts.ABI.PointerSize * 8)
		return &ir.StructType{Fields: []ir.Type{ir.Pointer(ir.I8), ir.Int(bits)}}, nil

	case *schema.TerminatedString:
		return ir.Pointer(ir.I8), nil

	default:
		return nil, errors.NoIRMapping(t, path, "unknown schema node")
	}
}

func (c *Compiler) irField(f *schema.Field, path []string) (ir.Type, error) {
	prim, ok := format.IRType(f.Format())
	if !ok {
		return nil, errors.NoIRMapping(f, path, "format "+f.Format().String()+" has no IR primitive")
	}
	if f.Format().StandardSize() > 1 && f.Endianness() != format.Native &&
		c.opts.ABI.Order(f.Endianness()) != c.opts.ABI.Order(format.Native) {
		c.warn(TargetIR, f, path, f.Endianness().Describe()+" endian byte order is dropped in the IR type")
	}

	switch prim {
	case format.IRFloat:
		return ir.Float, nil
	case format.IRDouble:
		return ir.Double, nil
	case format.IRBytePtr:
		return ir.Pointer(ir.I8), nil
	default:
		return ir.Int(prim.Bits()), nil
	}
}

func (c *Compiler) irAll(children []schema.Type, path []string) ([]ir.Type, error) {
	out := make([]ir.Type, len(children))
	for i, child := range children {
		t, err := c.ir(child, path)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
