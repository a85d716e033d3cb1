package dtype

import (
	"strings"
	"testing"

	"github.com/wippyai/lltypes/format"
)

func TestScalar(t *testing.T) {
	tests := []struct {
		s    *Scalar
		want string
		size int
	}{
		{NewScalar(format.Big, format.UShort), ">H", 2},
		{NewScalar(format.Little, format.Short), "<h", 2},
		{NewScalar(format.Native, format.Float), "=f", 4},
		{NewScalar(format.Native, format.Bool), "=?", 1},
		{NewScalar(format.Big, format.Double), ">d", 8},
	}
	for _, tt := range tests {
		if tt.s.String() != tt.want {
			t.Errorf("String = %q, want %q", tt.s.String(), tt.want)
		}
		if tt.s.ItemSize() != tt.size {
			t.Errorf("%s ItemSize = %d, want %d", tt.want, tt.s.ItemSize(), tt.size)
		}
	}
}

func TestRecord(t *testing.T) {
	r := NewRecord([]Member{
		{Name: "a", Type: NewScalar(format.Native, format.Bool)},
		{Name: "b", Type: NewScalar(format.Native, format.SByte)},
		{Name: "c", Type: NewScalar(format.Native, format.Float)},
	})

	if got, want := r.String(), "[('a', '=?'), ('b', '=b'), ('c', '=f')]"; got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
	if r.ItemSize() != 6 {
		t.Errorf("ItemSize = %d, want 6", r.ItemSize())
	}
	if strings.Join(r.Names(), ",") != "a,b,c" {
		t.Errorf("Names = %v", r.Names())
	}
	for i, want := range []int{0, 1, 2} {
		if r.Fields[i].Offset != want {
			t.Errorf("offset %d = %d, want %d", i, r.Fields[i].Offset, want)
		}
	}
	if f, ok := r.Lookup("c"); !ok || f.Offset != 2 {
		t.Errorf("Lookup(c) = %+v, %v", f, ok)
	}
	if _, ok := r.Lookup("zz"); ok {
		t.Error("Lookup(zz) should miss")
	}
}

func TestSubarray(t *testing.T) {
	s := NewSubarray(NewScalar(format.Native, format.SByte), 128)
	if got := s.String(); got != "('=b', (128,))" {
		t.Errorf("String = %s", got)
	}
	if s.ItemSize() != 128 {
		t.Errorf("ItemSize = %d", s.ItemSize())
	}

	r := NewRecord([]Member{
		{Name: "data", Type: NewPlaceholder(PlaceholderBytes)},
		{Name: "shape", Type: NewSubarray(NewScalar(format.Native, format.LongLong), 3)},
	})
	if got, want := r.String(), "[('data', '|S0'), ('shape', '=q', (3,))]"; got != want {
		t.Errorf("String = %s, want %s", got, want)
	}
	if r.Fields[1].Offset != 0 || r.ItemSize() != 24 {
		t.Errorf("offset %d size %d", r.Fields[1].Offset, r.ItemSize())
	}

	nested := NewSubarray(NewRecord([]Member{{Name: "x", Type: NewScalar(format.Little, format.Int)}}), 2)
	if got := nested.String(); got != "([('x', '<i')], (2,))" {
		t.Errorf("nested String = %s", got)
	}
}

func TestOverlay(t *testing.T) {
	o := NewOverlay([]Member{
		{Name: "i", Type: NewScalar(format.Little, format.Int)},
		{Name: "d", Type: NewScalar(format.Little, format.Double)},
	})
	if !o.Overlay {
		t.Fatal("Overlay not set")
	}
	want := "{'names': ['i', 'd'], 'formats': ['<i', '<d'], 'offsets': [0, 0], 'itemsize': 8}"
	if o.String() != want {
		t.Errorf("String = %s\nwant     %s", o.String(), want)
	}
}

func TestPlaceholder(t *testing.T) {
	if NewPlaceholder(PlaceholderString).String() != "=U0" {
		t.Error("string placeholder")
	}
	if NewPlaceholder(PlaceholderBytes).String() != "|S0" {
		t.Error("bytes placeholder")
	}
	if NewPlaceholder(PlaceholderBytes).ItemSize() != 0 {
		t.Error("placeholder is flexible")
	}
}
