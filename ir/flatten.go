package ir

import (
	"strconv"
	"strings"

	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/lltypes/errors"
)

// MaxFlatValues is the most core values a type may flatten to; larger
// values are passed through memory.
const MaxFlatValues = 16

// Flatten returns the core value types a value of t occupies when passed
// by value on wasm32. Unions have no flat form, and a type needing more
// than MaxFlatValues values is rejected.
func Flatten(t Type) ([]api.ValueType, error) {
	return flatten(t, nil)
}

func tooMany(t Type) error {
	return errors.Unsupported(errors.PhaseIR,
		t.String()+" flattens to more than "+strconv.Itoa(MaxFlatValues)+" values")
}

func push(t Type, out []api.ValueType, vt api.ValueType) ([]api.ValueType, error) {
	if len(out) >= MaxFlatValues {
		return nil, tooMany(t)
	}
	return append(out, vt), nil
}

func flatten(t Type, out []api.ValueType) ([]api.ValueType, error) {
	switch v := t.(type) {
	case *IntType:
		if v.Bits > 32 {
			return push(v, out, api.ValueTypeI64)
		}
		return push(v, out, api.ValueTypeI32)
	case *FloatType:
		if v.Bits == 64 {
			return push(v, out, api.ValueTypeF64)
		}
		return push(v, out, api.ValueTypeF32)
	case *PointerType:
		return push(v, out, api.ValueTypeI32)
	case *ArrayType:
		return repeat(v, v.Elem, v.Len, out)
	case *VectorType:
		return repeat(v, v.Elem, v.Width, out)
	case *StructType:
		var err error
		for _, f := range v.Fields {
			if out, err = flatten(f, out); err != nil {
				return nil, err
			}
		}
		return out, nil
	case *UnionType:
		return nil, errors.Unsupported(errors.PhaseIR, "union "+v.String()+" has no flat representation")
	default:
		return nil, errors.Unsupported(errors.PhaseIR, "unknown IR type")
	}
}

func repeat(t, elem Type, n int, out []api.ValueType) ([]api.ValueType, error) {
	if n == 0 {
		return out, nil
	}
	one, err := flatten(elem, nil)
	if err != nil {
		return nil, err
	}
	if len(one) == 0 {
		return out, nil
	}
	if n > (MaxFlatValues-len(out))/len(one) {
		return nil, tooMany(t)
	}
	for i := 0; i < n; i++ {
		out = append(out, one...)
	}
	return out, nil
}

// Signature renders flattened value types, e.g. "(i32, i32, f32)".
func Signature(types []api.ValueType) string {
	names := make([]string, len(types))
	for i, vt := range types {
		names[i] = api.ValueTypeName(vt)
	}
	return "(" + strings.Join(names, ", ") + ")"
}
