// Package lltypes describes binary data layouts once and lowers them to
// several type systems.
//
// A schema is an immutable tree of descriptor nodes built with the schema
// package. The lower package turns a tree into any of four targets:
//
//	lltypes/
//	├── schema/       Type descriptor nodes and constructor helpers
//	├── format/       Format codes and per-target primitive tables
//	├── lower/        Lowering engine, Compiler cache, warnings
//	├── dtype/        Array descriptors (numpy-style type strings)
//	├── ir/           IR types (LLVM-style) and wasm32 flattening
//	├── native/       C-compatible layouts for a chosen ABI
//	├── errors/       Structured error types
//	└── cmd/lltc/     Command line and interactive browser
//
// Component-model (WIT) types come from go.bytecodealliance.org/wit.
//
// # Quick Start
//
//	s, err := schema.NewStruct("mystruct",
//		schema.Bool("a"),
//		schema.Int8("b"),
//		schema.Float32("c"),
//	)
//	if err != nil {
//		return err
//	}
//
//	d, _ := lower.ToDType(s)  // [('a', '=?'), ('b', '=b'), ('c', '=f')]
//	t, _ := lower.ToIR(s)     // %mystruct = type { i1, i8, float }
//	n, _ := lower.ToNative(s) // struct mystruct, size 8
//
// # Errors
//
// Construction rejects structurally invalid nodes with a malformed_schema
// error. Lowering fails fast with the target's no-mapping error, naming the
// innermost node that could not be represented and its path from the root:
//
//	if errors.Is(err, lterrors.ErrNoArrayMapping) { ... }
package lltypes
