package abi

import "go.bytecodealliance.org/wit"

// CanonInfo is the Canonical ABI memory layout of a component-model type.
type CanonInfo struct {
	Size  uint32
	Align uint32
	// Flat is the number of core values the type flattens to.
	Flat int
	// Overflow reports that the size exceeds MaxSize; Size is then zero.
	Overflow bool
}

// Canon computes the layout of t. Only the shapes produced by the WIT
// lowering are handled: primitives, string, record, variant, enum and tuple.
func Canon(t wit.Type) CanonInfo {
	switch typ := t.(type) {
	case wit.Bool, wit.U8, wit.S8:
		return CanonInfo{Size: 1, Align: 1, Flat: 1}
	case wit.U16, wit.S16:
		return CanonInfo{Size: 2, Align: 2, Flat: 1}
	case wit.U32, wit.S32, wit.F32, wit.Char:
		return CanonInfo{Size: 4, Align: 4, Flat: 1}
	case wit.U64, wit.S64, wit.F64:
		return CanonInfo{Size: 8, Align: 8, Flat: 1}
	case wit.String:
		return CanonInfo{Size: 8, Align: 4, Flat: 2}
	case *wit.TypeDef:
		return canonTypeDef(typ)
	default:
		return CanonInfo{Align: 1}
	}
}

func canonTypeDef(t *wit.TypeDef) CanonInfo {
	switch kind := t.Kind.(type) {
	case *wit.Record:
		types := make([]wit.Type, len(kind.Fields))
		for i, f := range kind.Fields {
			types[i] = f.Type
		}
		return canonSequential(types)
	case *wit.Tuple:
		return canonSequential(kind.Types)
	case *wit.Enum:
		size := DiscriminantSize(len(kind.Cases))
		return CanonInfo{Size: size, Align: size, Flat: 1}
	case *wit.Variant:
		return canonVariant(kind)
	case wit.Type:
		return Canon(kind)
	default:
		return CanonInfo{Align: 1}
	}
}

func canonSequential(types []wit.Type) CanonInfo {
	info := CanonInfo{Align: 1}
	var offset uint64
	var prev wit.Type
	var elem CanonInfo
	for i, t := range types {
		// tuples repeat one element type
		if i == 0 || t != prev {
			elem, prev = Canon(t), t
		}
		info.Overflow = info.Overflow || elem.Overflow
		offset = alignTo64(offset, elem.Align) + uint64(elem.Size)
		if elem.Align > info.Align {
			info.Align = elem.Align
		}
		info.Flat += elem.Flat
	}
	return info.sized(alignTo64(offset, info.Align))
}

func canonVariant(v *wit.Variant) CanonInfo {
	disc := DiscriminantSize(len(v.Cases))
	align := disc
	var payload uint32
	flat := 0
	overflow := false
	for _, c := range v.Cases {
		if c.Type == nil {
			continue
		}
		info := Canon(c.Type)
		overflow = overflow || info.Overflow
		if info.Align > align {
			align = info.Align
		}
		if info.Size > payload {
			payload = info.Size
		}
		if info.Flat > flat {
			flat = info.Flat
		}
	}
	info := CanonInfo{Align: align, Flat: 1 + flat, Overflow: overflow}
	return info.sized(alignTo64(alignTo64(uint64(disc), align)+uint64(payload), align))
}

func (c CanonInfo) sized(size uint64) CanonInfo {
	if c.Overflow || size > uint64(MaxSize) {
		c.Size, c.Overflow = 0, true
		return c
	}
	c.Size = uint32(size)
	return c
}

// DiscriminantSize is 1 byte for up to 256 cases, 2 for up to 65536, else 4.
func DiscriminantSize(numCases int) uint32 {
	switch {
	case numCases <= 256:
		return 1
	case numCases <= 65536:
		return 2
	default:
		return 4
	}
}

func alignTo64(offset uint64, align uint32) uint64 {
	a := uint64(align)
	if a <= 1 {
		return offset
	}
	return (offset + a - 1) / a * a
}
