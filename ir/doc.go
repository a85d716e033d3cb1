// Package ir is the JIT intermediate-representation type system targeted by
// the IR lowering.
//
// Types follow LLVM spelling:
//
//	i1 i8 i16 i32 i64      IntType
//	float double           FloatType
//	i8*  %name*            PointerType
//	[128 x i8]             ArrayType
//	<4 x float>            VectorType
//	%name = type { ... }   StructType (anonymous structs print inline)
//	%name = type union {}  UnionType
//
// Named aggregates print as a reference (%name); Definitions lists the
// bodies of every named aggregate reachable from a type.
//
// # Flattening
//
// Flatten maps a type onto the core value types of the wazero JIT
// (wasm32: pointers are i32), which is how values of the type travel
// through a call boundary:
//
//	{ i1, i8, float }  ->  (i32, i32, f32)
package ir
