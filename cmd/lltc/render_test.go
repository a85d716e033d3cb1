package main

import (
	"strings"
	"testing"

	"github.com/wippyai/lltypes/lower"
	"github.com/wippyai/lltypes/native"
	"github.com/wippyai/lltypes/schema"
)

func lp64Compiler() *lower.Compiler {
	opts := lower.DefaultOptions()
	opts.ABI = native.LP64
	return lower.NewCompiler(opts)
}

func TestSamplesBuild(t *testing.T) {
	for _, name := range sampleNames() {
		if _, err := samples[name](); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestRender(t *testing.T) {
	c := lp64Compiler()
	root, err := samples["mystruct"]()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		target lower.Target
		want   []string
	}{
		{lower.TargetArray, []string{"[('a', '=?'), ('b', '=b'), ('c', '=f')]", "itemsize 6"}},
		{lower.TargetIR, []string{"%mystruct = type { i1, i8, float }", "wasm32 (i32, i32, f32)"}},
		{lower.TargetNative, []string{"struct mystruct (size 8, align 4)", "c: c_float"}},
		{lower.TargetWIT, []string{"record mystruct {", "  c: f32,", "canonical size 8, align 4, flat 3"}},
	}
	for _, tt := range tests {
		t.Run(tt.target.String(), func(t *testing.T) {
			out, err := render(c, tt.target, root)
			if err != nil {
				t.Fatal(err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("missing %q in\n%s", w, out)
				}
			}
		})
	}
}

func TestRenderWIT(t *testing.T) {
	c := lp64Compiler()

	color, _ := samples["color"]()
	out, err := render(c, lower.TargetWIT, color)
	if err != nil || !strings.Contains(out, "enum color {\n  red,") {
		t.Errorf("enum = %q, %v", out, err)
	}

	packet, _ := samples["packet"]()
	out, err = render(c, lower.TargetWIT, packet)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "payload: payload,") {
		t.Errorf("record = %s", out)
	}

	arr, _ := samples["array_c"]()
	if _, err := render(c, lower.TargetWIT, arr); err == nil {
		t.Error("pointer member should not lower to WIT")
	}
}

func TestRenderErrors(t *testing.T) {
	c := lp64Compiler()
	vec, _ := samples["vec4"]()
	if _, err := render(c, lower.TargetNative, vec); err == nil {
		t.Error("vector should not lower to native")
	}
	out, err := render(c, lower.TargetIR, vec)
	if err != nil || !strings.Contains(out, "<4 x float>") {
		t.Errorf("IR = %q, %v", out, err)
	}
}

func TestRenderLargeSequence(t *testing.T) {
	c := lp64Compiler()
	big, _ := schema.NewSequence("big", schema.Byte("b"), 1<<30)

	out, err := render(c, lower.TargetIR, big)
	if err != nil {
		t.Fatal(err)
	}
	if out != "[1073741824 x i8]" {
		t.Errorf("IR = %q", out)
	}
	if _, err := render(c, lower.TargetWIT, big); err == nil {
		t.Error("oversized tuple should not lower to WIT")
	}
	out, err = render(c, lower.TargetArray, big)
	if err != nil || !strings.Contains(out, "itemsize 1073741824") {
		t.Errorf("array = %q, %v", out, err)
	}
}

func TestRenderNameCollision(t *testing.T) {
	c := lp64Compiler()
	small, _ := schema.NewStruct("p", schema.Int8("x"))
	wide, _ := schema.NewStruct("p", schema.Float64("y"))
	root, _ := schema.NewStruct("root", small, schema.NewPointer(wide))

	out, err := render(c, lower.TargetIR, root)
	if err != nil {
		t.Fatal(err)
	}
	for _, w := range []string{"%p = type { i8 }", "%p.1 = type { double }", "%root = type { %p, %p.1* }"} {
		if !strings.Contains(out, w) {
			t.Errorf("missing %q in\n%s", w, out)
		}
	}
}
