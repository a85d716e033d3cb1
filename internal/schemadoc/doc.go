// Package schemadoc reads and writes schema trees as YAML or JSON
// documents.
//
// A document is one node; composite nodes nest their children:
//
//	kind: struct
//	name: packet
//	fields:
//	  - {kind: field, name: a, type: Bool}
//	  - {kind: field, name: n, format: H, order: ">"}
//	  - {kind: sequence, name: data, length: 16, elem: {kind: field, type: Byte}}
//	  - {kind: enum, name: color, symbols: [{name: X, value: 1}]}
//
// A field names either a constructor helper in type, or a format code
// with an optional byte order (native when omitted). Unknown keys are
// rejected.
package schemadoc
