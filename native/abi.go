package native

import (
	"encoding/binary"
	"runtime"
	"unsafe"

	"github.com/wippyai/lltypes/format"
)

// ABI fixes the platform-dependent widths and alignments of C types.
type ABI struct {
	Name          string
	PointerSize   uintptr
	LongSize      uintptr
	LongLongAlign uintptr
	DoubleAlign   uintptr
	BigEndian     bool
}

var (
	// LP64 is 64-bit Unix.
	LP64 = ABI{Name: "lp64", PointerSize: 8, LongSize: 8, LongLongAlign: 8, DoubleAlign: 8}
	// LLP64 is 64-bit Windows.
	LLP64 = ABI{Name: "llp64", PointerSize: 8, LongSize: 4, LongLongAlign: 8, DoubleAlign: 8}
	// ILP32 is 32-bit i386 System V, where 8-byte scalars are 4-byte aligned.
	ILP32 = ABI{Name: "ilp32", PointerSize: 4, LongSize: 4, LongLongAlign: 4, DoubleAlign: 4}
)

// HostABI describes the running process.
func HostABI() ABI {
	a := ABI{
		Name:          "host",
		PointerSize:   unsafe.Sizeof(uintptr(0)),
		LongLongAlign: unsafe.Alignof(int64(0)),
		DoubleAlign:   unsafe.Alignof(float64(0)),
		BigEndian:     binary.NativeEndian.Uint16([]byte{0, 1}) == 1,
	}
	a.LongSize = 8
	if runtime.GOOS == "windows" || a.PointerSize == 4 {
		a.LongSize = 4
	}
	return a
}

// ABIByName returns a preset: "host", "lp64", "llp64" or "ilp32".
func ABIByName(name string) (ABI, bool) {
	switch name {
	case "", "host":
		return HostABI(), true
	case LP64.Name:
		return LP64, true
	case LLP64.Name:
		return LLP64, true
	case ILP32.Name:
		return ILP32, true
	default:
		return ABI{}, false
	}
}

// Order resolves the native byte order prefix to big or little.
func (a ABI) Order(e format.Endianness) format.Endianness {
	if e != format.Native {
		return e
	}
	if a.BigEndian {
		return format.Big
	}
	return format.Little
}

// Sizeof returns the width of a C primitive.
func (a ABI) Sizeof(t format.CType) uintptr {
	switch t {
	case format.CChar, format.CByte, format.CUByte, format.CBool:
		return 1
	case format.CShort, format.CUShort:
		return 2
	case format.CInt, format.CUInt, format.CFloat:
		return 4
	case format.CLong, format.CULong:
		return a.LongSize
	case format.CLongLong, format.CULongLong, format.CDouble:
		return 8
	case format.CCharP, format.CVoidP:
		return a.PointerSize
	default:
		return 0
	}
}

// Alignof returns the alignment of a C primitive.
func (a ABI) Alignof(t format.CType) uintptr {
	switch t {
	case format.CLongLong, format.CULongLong:
		return a.LongLongAlign
	case format.CDouble:
		return a.DoubleAlign
	default:
		return a.Sizeof(t)
	}
}
