// Package lower converts schema trees into target type representations.
//
// # Targets
//
//	DType   array descriptor (dtype.Descr), numpy-style type strings
//	IR      IR type (ir.Type), LLVM-style
//	Native  C-compatible layout (native.Type) for a chosen ABI
//	WIT     component-model type (wit.Type)
//
// Each target is a recursive walk over the tree. Composite nodes lower
// their children in declaration order; Field leaves consult the format
// registry tables for the target. The first node that cannot be
// represented aborts the whole call with the target's no-mapping error,
// carrying that node and the name path from the root:
//
//	_, err := lower.ToDType(root)
//	if errors.Is(err, lterrors.ErrNoArrayMapping) {
//		var e *lterrors.Error
//		errors.As(err, &e)
//		fmt.Println(e.Path, e.Schema)
//	}
//
// # Compiler
//
// A Compiler holds Options and caches each root's result per target, so
// repeated calls return the same object. The package functions ToDType,
// ToIR, ToNative and ToWIT use a fresh compiler with DefaultOptions.
//
// # Warnings
//
// Some lowerings succeed but drop information: a non-native byte order in
// the IR target, a platform-width long in the native target, a sparse enum
// in the WIT target. These are reported as Warning values to Options.Warn
// and logged at warn level, and never change the result.
package lower
