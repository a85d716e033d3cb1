package main

import (
	"slices"

	"github.com/samber/lo"

	"github.com/wippyai/lltypes/schema"
)

// samples are the built-in schemas selectable with -schema.
var samples = map[string]func() (schema.Type, error){
	"mystruct": func() (schema.Type, error) {
		return schema.NewStruct("mystruct", schema.Bool("a"), schema.Int8("b"), schema.Float32("c"))
	},
	"myarr": func() (schema.Type, error) {
		return schema.NewSequence("myarr", schema.Int8("a"), 128)
	},
	"array_c": func() (schema.Type, error) {
		return schema.ArrayC("Array_C", schema.UNInt8, 3)
	},
	"array_f": func() (schema.Type, error) {
		return schema.ArrayF("Array_F", schema.UNInt8, 3)
	},
	"array_s": func() (schema.Type, error) {
		return schema.ArrayS("Array_S", schema.UNInt8, 3)
	},
	"bar": func() (schema.Type, error) {
		return schema.NewEnum("bar",
			schema.Symbol{Name: "X", Value: 1},
			schema.Symbol{Name: "Y", Value: 2},
			schema.Symbol{Name: "Z", Value: 3},
		)
	},
	"color": func() (schema.Type, error) {
		return schema.NewEnum("color",
			schema.Symbol{Name: "red", Value: 0},
			schema.Symbol{Name: "green", Value: 1},
			schema.Symbol{Name: "blue", Value: 2},
		)
	},
	"fixedstring": func() (schema.Type, error) {
		return schema.FixedString("foo", 35)
	},
	"vstring": func() (schema.Type, error) {
		return schema.NewVariableString("foo"), nil
	},
	"cstring": func() (schema.Type, error) {
		return schema.CString("foo"), nil
	},
	"vec4": func() (schema.Type, error) {
		return schema.NewVector(schema.Float32("xyzw"), 4)
	},
	"packet": func() (schema.Type, error) {
		u, err := schema.NewUnion("payload", schema.UInt8("kind"), schema.ULInt32("word"), schema.LFloat64("real"))
		if err != nil {
			return nil, err
		}
		return schema.NewStruct("packet",
			schema.ULInt16("length"),
			schema.UBInt8("flags"),
			schema.ULInt64("stamp"),
			u,
		)
	},
	"wire": func() (schema.Type, error) {
		return schema.NewStruct("wire", schema.UBInt16("port"), schema.UBInt32("addr"))
	},
}

func sampleNames() []string {
	names := lo.Keys(samples)
	slices.Sort(names)
	return names
}
