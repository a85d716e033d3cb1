package lower

import (
	"strconv"

	"github.com/samber/lo"

	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/format"
	"github.com/wippyai/lltypes/native"
	"github.com/wippyai/lltypes/schema"
)

func (c *Compiler) native(t schema.Type, path []string) (native.Type, error) {
	path = extend(path, t)
	a := c.opts.ABI

	switch n := t.(type) {
	case *schema.Field:
		return c.nativeField(n, path)

	case *schema.Struct:
		members, err := c.nativeMembers(n, n.Fields(), path)
		if err != nil {
			return nil, err
		}
		s, err := native.NewStruct(n.Name(), members)
		if err != nil {
			return nil, attach(err, n, path)
		}
		return s, nil

	case *schema.Union:
		members, err := c.nativeMembers(n, n.Options(), path)
		if err != nil {
			return nil, err
		}
		return native.NewUnion(n.Name(), members), nil

	case *schema.Enum:
		symbols := lo.Map(n.Symbols(), func(s schema.Symbol, _ int) native.Symbol {
			return native.Symbol{Name: s.Name, Value: s.Value}
		})
		base := native.NewScalar(a, format.CUByte, format.Native)
		return native.NewEnum(n.Name(), base, symbols), nil

	case *schema.Sequence:
		elem, err := c.native(n.Elem(), path)
		if err != nil {
			return nil, err
		}
		arr, err := native.NewArray(elem, n.Len())
		if err != nil {
			return nil, attach(err, n, path)
		}
		return arr, nil

	case *schema.Vector:
		return nil, errors.NoNativeMapping(n, path, "vectors have no native layout")

	case *schema.Pointer:
		if n.Elem() == nil {
			return native.NewPointer(a, nil), nil
		}
		elem, err := c.native(n.Elem(), path)
		if err != nil {
			return nil, err
		}
		return native.NewPointer(a, elem), nil

	case *schema.VariableString:
		length := format.CULongLong
		if a.PointerSize == 4 {
			length = format.CUInt
		}
		s, err := native.NewStruct(n.Name(), []native.Member{
			{Name: "ptr", Type: native.NewScalar(a, format.CCharP, format.Native)},
			{Name: "length", Type: native.NewScalar(a, length, format.Native)},
		})
		if err != nil {
			return nil, attach(err, n, path)
		}
		return s, nil

	case *schema.TerminatedString:
		return native.NewScalar(a, format.CCharP, format.Native), nil

	default:
		return nil, errors.NoNativeMapping(t, path, "unknown schema node")
	}
}

func (c *Compiler) nativeField(f *schema.Field, path []string) (native.Type, error) {
	ct, ok := format.NativeType(f.Format())
	if !ok {
		return nil, errors.NoNativeMapping(f, path, "format "+f.Format().String()+" has no native primitive")
	}
	s := native.NewScalar(c.opts.ABI, ct, f.Endianness())
	if !ct.IsPointer() && s.Size() != uintptr(f.Format().StandardSize()) {
		c.warn(TargetNative, f, path, ct.String()+" is "+strconv.Itoa(int(s.Size()))+
			" bytes on "+c.opts.ABI.Name+", not the standard "+strconv.Itoa(f.Format().StandardSize()))
	}
	return s, nil
}

func (c *Compiler) nativeMembers(node schema.Type, children []schema.Type, path []string) ([]native.Member, error) {
	members := make([]native.Member, len(children))
	for i, child := range children {
		t, err := c.native(child, path)
		if err != nil {
			return nil, err
		}
		members[i] = native.Member{Name: child.Name(), Type: t}
	}
	if err := uniqueNames(errors.PhaseNative, node, path, children); err != nil {
		return nil, err
	}
	return members, nil
}
