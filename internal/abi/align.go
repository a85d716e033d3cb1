package abi

import "math"

// MaxSize bounds every size this module computes, so layouts stay
// representable on 32-bit hosts.
const MaxSize uintptr = math.MaxUint32

// AlignTo rounds offset up to a multiple of align. align must be a power of
// two; zero leaves offset unchanged.
func AlignTo(offset, align uintptr) uintptr {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// SafeMul multiplies within MaxSize.
func SafeMul(a, b uintptr) (uintptr, bool) {
	if a > MaxSize || b > MaxSize {
		return 0, false
	}
	if b != 0 && a > MaxSize/b {
		return 0, false
	}
	return a * b, true
}

// SafeAdd adds within MaxSize.
func SafeAdd(a, b uintptr) (uintptr, bool) {
	if a > MaxSize || b > MaxSize || a > MaxSize-b {
		return 0, false
	}
	return a + b, true
}
