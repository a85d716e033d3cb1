package main

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/lltypes/dtype"
	"github.com/wippyai/lltypes/internal/abi"
	"github.com/wippyai/lltypes/ir"
	"github.com/wippyai/lltypes/lower"
	"github.com/wippyai/lltypes/native"
	"github.com/wippyai/lltypes/schema"
)

// render lowers t to target and formats the result as text.
func render(c *lower.Compiler, target lower.Target, t schema.Type) (string, error) {
	out, err := c.Lower(target, t)
	if err != nil {
		return "", err
	}

	switch v := out.(type) {
	case dtype.Descr:
		return fmt.Sprintf("%s\nitemsize %d", v, v.ItemSize()), nil

	case ir.Type:
		var b strings.Builder
		defs, ref := ir.Declare(v)
		for _, def := range defs {
			b.WriteString(def)
			b.WriteByte('\n')
		}
		b.WriteString(ref)
		if flat, err := ir.Flatten(v); err == nil {
			b.WriteString("\nwasm32 ")
			b.WriteString(ir.Signature(flat))
		}
		return b.String(), nil

	case native.Type:
		return strings.TrimSuffix(native.Describe(v), "\n"), nil

	case wit.Type:
		info := abi.Canon(v)
		return fmt.Sprintf("%s\ncanonical size %d, align %d, flat %d",
			witDefinition(v), info.Size, info.Align, info.Flat), nil

	default:
		return fmt.Sprintf("%v", out), nil
	}
}

// witDefinition writes a top-level named type in WIT syntax.
func witDefinition(t wit.Type) string {
	td, ok := t.(*wit.TypeDef)
	if !ok || td.Name == nil {
		return witRef(t)
	}
	name := *td.Name

	switch k := td.Kind.(type) {
	case *wit.Record:
		fields := make([]string, len(k.Fields))
		for i, f := range k.Fields {
			fields[i] = "  " + f.Name + ": " + witRef(f.Type) + ","
		}
		return "record " + name + " {\n" + strings.Join(fields, "\n") + "\n}"
	case *wit.Variant:
		cases := make([]string, len(k.Cases))
		for i, c := range k.Cases {
			cases[i] = "  " + c.Name
			if c.Type != nil {
				cases[i] += "(" + witRef(c.Type) + ")"
			}
			cases[i] += ","
		}
		return "variant " + name + " {\n" + strings.Join(cases, "\n") + "\n}"
	case *wit.Enum:
		cases := make([]string, len(k.Cases))
		for i, c := range k.Cases {
			cases[i] = "  " + c.Name + ","
		}
		return "enum " + name + " {\n" + strings.Join(cases, "\n") + "\n}"
	case *wit.Tuple:
		return "type " + name + " = " + witTuple(k)
	case wit.Type:
		return "type " + name + " = " + witRef(k)
	default:
		return "type " + name
	}
}

// witRef names t where it is used as a member type.
func witRef(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		if tup, ok := v.Kind.(*wit.Tuple); ok {
			return witTuple(tup)
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}

func witTuple(t *wit.Tuple) string {
	parts := make([]string, len(t.Types))
	for i, e := range t.Types {
		parts[i] = witRef(e)
	}
	return "tuple<" + strings.Join(parts, ", ") + ">"
}
