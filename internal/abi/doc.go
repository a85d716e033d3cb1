// Package abi holds layout arithmetic shared by the lowering targets.
//
//   - align.go: alignment rounding and overflow-checked size arithmetic
//   - canon.go: Canonical ABI size, alignment and flat count of the
//     component-model types produced by the WIT lowering
//
// This package is internal to the module.
package abi
