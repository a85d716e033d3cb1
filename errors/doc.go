// Package errors provides structured error types for schema construction and lowering.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the offending schema node, the name path from the schema
// root, the target type involved and an optional cause.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseNative, errors.KindNoNativeMapping).
//		Node(field).
//		Path("packet", "header", "len").
//		Target("c_long").
//		Detail("no native type for format %q", "l").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NoArrayMapping(node, path, "enums have no array descriptor")
//	err := errors.MalformedSchema(path, width, "vector width must be 2, 4 or 8")
//
// All errors implement the standard error interface and support errors.Is/As.
// The package sentinels (ErrNoArrayMapping, ErrMalformedSchema, ...) match by
// kind regardless of phase:
//
//	if errors.Is(err, lltypeserrors.ErrNoIRMapping) { ... }
package errors
