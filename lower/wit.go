package lower

import (
	"strconv"

	"github.com/samber/lo"
	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
	"github.com/wippyai/lltypes/internal/abi"
	"github.com/wippyai/lltypes/schema"
)

// MaxTupleArity bounds the tuple a sequence lowers to.
const MaxTupleArity = 1024

func (c *Compiler) wit(t schema.Type, path []string) (wit.Type, error) {
	path = extend(path, t)

	switch n := t.(type) {
	case *schema.Field:
		return c.witField(n, path)

	case *schema.Struct:
		types, err := c.witMembers(n, n.Fields(), path)
		if err != nil {
			return nil, err
		}
		fields := make([]wit.Field, len(types))
		for i, typ := range types {
			fields[i] = wit.Field{Name: n.Field(i).Name(), Type: typ}
		}
		return sized(n, path, typeDef(n.Name(), &wit.Record{Fields: fields}))

	case *schema.Union:
		types, err := c.witMembers(n, n.Options(), path)
		if err != nil {
			return nil, err
		}
		cases := make([]wit.Case, len(types))
		for i, typ := range types {
			cases[i] = wit.Case{Name: n.Option(i).Name(), Type: typ}
		}
		return sized(n, path, typeDef(n.Name(), &wit.Variant{Cases: cases}))

	case *schema.Enum:
		if !n.Contiguous() || len(n.Symbols()) == 0 {
			c.warn(TargetWIT, n, path, "enum values are not 0..n-1; lowered to u8 without its symbols")
			return wit.U8{}, nil
		}
		cases := lo.Map(n.Symbols(), func(s schema.Symbol, _ int) wit.EnumCase {
			return wit.EnumCase{Name: s.Name}
		})
		return typeDef(n.Name(), &wit.Enum{Cases: cases}), nil

	case *schema.Sequence:
		if n.Len() > MaxTupleArity {
			return nil, errors.NoWITMapping(n, path, "tuple arity exceeds "+strconv.Itoa(MaxTupleArity))
		}
		elem, err := c.wit(n.Elem(), path)
		if err != nil {
			return nil, err
		}
		if _, ok := abi.SafeMul(uintptr(abi.Canon(elem).Size), uintptr(n.Len())); !ok {
			return nil, tooLargeWIT(n, path)
		}
		types := make([]wit.Type, n.Len())
		for i := range types {
			types[i] = elem
		}
		return typeDef("", &wit.Tuple{Types: types}), nil

	case *schema.VariableString:
		return wit.String{}, nil

	case *schema.Vector:
		return nil, errors.NoWITMapping(n, path, "vectors have no component-model type")

	case *schema.Pointer:
		return nil, errors.NoWITMapping(n, path, "pointers have no component-model type")

	case *schema.TerminatedString:
		return nil, errors.NoWITMapping(n, path, "terminated strings have no component-model type")

	default:
		return nil, errors.NoWITMapping(t, path, "unknown schema node")
	}
}

func (c *Compiler) witField(f *schema.Field, path []string) (wit.Type, error) {
	prim, ok := format.WITType(f.Format())
	if !ok {
		return nil, errors.NoWITMapping(f, path, "format "+f.Format().String()+" has no component-model primitive")
	}
	if f.Format().StandardSize() > 1 && c.opts.ABI.Order(f.Endianness()) == format.Big {
		return nil, errors.NoWITMapping(f, path, "the canonical ABI is little endian")
	}

	switch prim {
	case format.WITBool:
		return wit.Bool{}, nil
	case format.WITU8:
		return wit.U8{}, nil
	case format.WITS8:
		return wit.S8{}, nil
	case format.WITU16:
		return wit.U16{}, nil
	case format.WITS16:
		return wit.S16{}, nil
	case format.WITU32:
		return wit.U32{}, nil
	case format.WITS32:
		return wit.S32{}, nil
	case format.WITU64:
		return wit.U64{}, nil
	case format.WITS64:
		return wit.S64{}, nil
	case format.WITF32:
		return wit.F32{}, nil
	default:
		return wit.F64{}, nil
	}
}

func (c *Compiler) witMembers(node schema.Type, children []schema.Type, path []string) ([]wit.Type, error) {
	out := make([]wit.Type, len(children))
	for i, child := range children {
		if child.Name() == "" {
			return nil, errors.NoWITMapping(child, extend(path, child), "component-model members must be named")
		}
		t, err := c.wit(child, path)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	if err := uniqueNames(errors.PhaseWIT, node, path, children); err != nil {
		return nil, err
	}
	return out, nil
}

// sized rejects records and variants whose canonical size leaves the 32-bit address space.
func sized(node schema.Type, path []string, td *wit.TypeDef) (wit.Type, error) {
	if abi.Canon(td).Overflow {
		return nil, tooLargeWIT(node, path)
	}
	return td, nil
}

func tooLargeWIT(node schema.Type, path []string) error {
	return errors.NoWITMapping(node, path, "canonical size exceeds "+strconv.FormatUint(uint64(abi.MaxSize), 10)+" bytes")
}

func typeDef(name string, kind wit.TypeDefKind) *wit.TypeDef {
	td := &wit.TypeDef{Kind: kind}
	if name != "" {
		td.Name = &name
	}
	return td
}
