package lower

import (
	"math"
	"strconv"

	"github.com/wippyai/lltypes/dtype"
	"github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/internal/abi"
	"github.com/wippyai/lltypes/schema"
)

func (c *Compiler) dtype(t schema.Type, path []string) (dtype.Descr, error) {
	path = extend(path, t)

	switch n := t.(type) {
	case *schema.Field:
		return dtype.NewScalar(n.Endianness(), n.Format()), nil

	case *schema.Struct:
		members, err := c.dtypeMembers(n, n.Fields(), path)
		if err != nil {
			return nil, err
		}
		var size uintptr
		for _, m := range members {
			next, ok := abi.SafeAdd(size, uintptr(m.Type.ItemSize()))
			if !ok || next > maxItemSize {
				return nil, tooLarge(n, path)
			}
			size = next
		}
		return dtype.NewRecord(members), nil

	case *schema.Union:
		members, err := c.dtypeMembers(n, n.Options(), path)
		if err != nil {
			return nil, err
		}
		return dtype.NewOverlay(members), nil

	case *schema.Sequence:
		elem, err := c.dtype(n.Elem(), path)
		if err != nil {
			return nil, err
		}
		size, ok := abi.SafeMul(uintptr(elem.ItemSize()), uintptr(n.Len()))
		if !ok || size > maxItemSize {
			return nil, tooLarge(n, path)
		}
		return dtype.NewSubarray(elem, n.Len()), nil

	case *schema.Pointer:
		if f, ok := n.Elem().(*schema.Field); ok && f.Format().ByteLike() {
			return dtype.NewPlaceholder(dtype.PlaceholderBytes), nil
		}
		return nil, errors.NoArrayMapping(n, path, "only pointers to byte-like scalars have an array descriptor")

	case *schema.TerminatedString:
		return dtype.NewPlaceholder(dtype.PlaceholderString), nil

	case *schema.Enum:
		return nil, errors.NoArrayMapping(n, path, "enums have no array descriptor")

	case *schema.Vector:
		return nil, errors.NoArrayMapping(n, path, "vectors have no array descriptor")

	case *schema.VariableString:
		return nil, errors.NoArrayMapping(n, path, "variable-length strings have no array descriptor")

	default:
		return nil, errors.NoArrayMapping(t, path, "unknown schema node")
	}
}

// maxItemSize bounds descriptor sizes so they stay representable as int on
// every host.
const maxItemSize = min(abi.MaxSize, uintptr(math.MaxInt))

func tooLarge(node schema.Type, path []string) error {
	return errors.NoArrayMapping(node, path,
		"item size exceeds "+strconv.FormatUint(uint64(maxItemSize), 10)+" bytes")
}

func (c *Compiler) dtypeMembers(node schema.Type, children []schema.Type, path []string) ([]dtype.Member, error) {
	members := make([]dtype.Member, len(children))
	for i, child := range children {
		d, err := c.dtype(child, path)
		if err != nil {
			return nil, err
		}
		members[i] = dtype.Member{Name: child.Name(), Type: d}
	}
	if err := uniqueNames(errors.PhaseArray, node, path, children); err != nil {
		return nil, err
	}
	return members, nil
}
