package schemadoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	lterrors "github.com/wippyai/lltypes/errors"
	"github.com/wippyai/lltypes/schema"
)

const packetDoc = `
kind: struct
name: packet
fields:
  - {kind: field, name: a, type: Bool}
  - {kind: field, name: n, format: H, order: ">"}
  - {kind: sequence, name: data, length: 16, elem: {kind: field, type: Byte}}
  - {kind: enum, name: color, symbols: [{name: X, value: 1}, {name: Y, value: 2}]}
  - kind: union
    name: u
    tag: {kind: field, name: tag, type: UInt8}
    options:
      - {kind: field, name: i, type: Int32}
      - {kind: field, name: f, type: Float32}
  - {kind: vector, width: 4, elem: {kind: field, name: lanes, type: Float32}}
  - {kind: pointer, elem: {kind: field, name: buf, type: Byte}}
  - {kind: vstring, name: s}
  - {kind: cstring, name: c}
`

func TestParse(t *testing.T) {
	root, err := Parse([]byte(packetDoc))
	if err != nil {
		t.Fatal(err)
	}
	s, ok := root.(*schema.Struct)
	if !ok || s.Name() != "packet" || s.Len() != 9 {
		t.Fatalf("root = %v", root)
	}

	kinds := make([]string, s.Len())
	for i, f := range s.Fields() {
		kinds[i] = f.Kind().String()
	}
	want := "Field,Field,Sequence,Enum,Union,Vector,Pointer,VariableString,TerminatedString"
	if got := strings.Join(kinds, ","); got != want {
		t.Errorf("kinds = %s", got)
	}

	if f := s.Field(1).(*schema.Field); f.TypeString() != ">H" {
		t.Errorf("n = %s", f.TypeString())
	}
	if seq := s.Field(2).(*schema.Sequence); seq.Len() != 16 {
		t.Errorf("data len = %d", seq.Len())
	}
	if u := s.Field(4).(*schema.Union); u.Tag().Name() != "tag" || u.Len() != 2 {
		t.Errorf("union = %v", u)
	}
	if v := s.Field(5).(*schema.Vector); v.Width() != 4 {
		t.Errorf("vector width = %d", v.Width())
	}
}

func TestParseJSON(t *testing.T) {
	doc := `{"kind": "sequence", "name": "arr", "length": 3, "elem": {"kind": "field", "format": "q"}}`
	root, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	seq := root.(*schema.Sequence)
	if seq.Elem().(*schema.Field).TypeString() != "=q" {
		t.Errorf("elem = %s", seq.Elem().(*schema.Field).TypeString())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		sentinel error
		path     string
	}{
		{"unknown key", "kind: field\nname: a\ntype: Bool\ncolour: red\n", nil, ""},
		{"bad yaml", "kind: [", nil, ""},
		{"unknown kind", "kind: blob\nname: a\n", nil, "a"},
		{"unknown helper", "kind: field\nname: a\ntype: Int128\n", nil, "a"},
		{"type and format", "kind: field\nname: a\ntype: Bool\nformat: b\n", nil, "a"},
		{"no length", "kind: sequence\nname: s\nelem: {kind: field, type: Byte}\n", nil, "s"},
		{"bad code", "kind: struct\nname: s\nfields: [{kind: field, name: x, format: z}]\n", lterrors.ErrMalformedSchema, "s.x"},
		{"bad width", "kind: vector\nwidth: 3\nelem: {kind: field, name: v, type: Int8}\n", lterrors.ErrMalformedSchema, "v"},
		{"negative length", "kind: struct\nname: r\nfields: [{kind: sequence, name: s, length: -1, elem: {kind: field, type: Byte}}]\n", lterrors.ErrMalformedSchema, "r.s"},
		{"bad terminator", "kind: cstring\nname: c\nterminator: 300\n", nil, "c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.sentinel != nil && !errors.Is(err, tt.sentinel) {
				t.Errorf("got %v, want %v", err, tt.sentinel)
			}
			var e *lterrors.Error
			if !errors.As(err, &e) {
				t.Fatalf("error is %T", err)
			}
			if tt.path != "" && strings.Join(e.Path, ".") != tt.path {
				t.Errorf("path = %v, want %s", e.Path, tt.path)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	root, err := Parse([]byte(packetDoc))
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(root)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Parse(data)
	if err != nil {
		t.Fatalf("reparse: %v\n%s", err, data)
	}

	var a, b []string
	schema.Walk(root, func(t schema.Type, path []string, _ int) bool {
		a = append(a, t.String())
		return true
	})
	schema.Walk(again, func(t schema.Type, path []string, _ int) bool {
		b = append(b, t.String())
		return true
	})
	if strings.Join(a, "|") != strings.Join(b, "|") {
		t.Errorf("round trip differs:\n%v\n%v", a, b)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packet.yaml")
	if err := os.WriteFile(path, []byte(packetDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(path); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
