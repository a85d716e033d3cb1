package native

import (
	"fmt"
	"strings"
)

// Describe renders t and its members with offsets, sizes and alignments,
// one line per node.
func Describe(t Type) string {
	var b strings.Builder
	describe(&b, "", t, 0, 0)
	return b.String()
}

func describe(b *strings.Builder, name string, t Type, offset uintptr, depth int) {
	indent := strings.Repeat("  ", depth)
	label := t.String()
	if name != "" {
		label = name + ": " + label
	}
	fmt.Fprintf(b, "%s%-4d %s (size %d, align %d)\n", indent, offset, label, t.Size(), t.Align())

	switch n := t.(type) {
	case *Struct:
		for _, f := range n.Fields {
			describe(b, f.Name, f.Type, offset+f.Offset, depth+1)
		}
	case *Union:
		for _, f := range n.Fields {
			describe(b, f.Name, f.Type, offset, depth+1)
		}
	case *Enum:
		for _, s := range n.symbols {
			fmt.Fprintf(b, "%s  %s = %d\n", indent, s.Name, s.Value)
		}
	}
}
