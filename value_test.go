package jsom

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestWrapIdempotent(t *testing.T) {
	nodes := []any{nil, 1, 2.5, "s", true, MakeMapping(), MakeSequence(1, 2)}
	for _, n := range nodes {
		w := Wrap(n)
		if Wrap(w) != w {
			t.Errorf("Wrap(Wrap(%v)) is a new wrapper", n)
		}
		if _, nested := Wrap(w).Raw().(*Value); nested {
			t.Errorf("Wrap(Wrap(%v)) nests", n)
		}
		if !Equal(Unwrap(Wrap(w)), n) {
			t.Errorf("Unwrap(Wrap(%v)) = %v", n, Unwrap(Wrap(w)))
		}
	}
	if Unwrap(5) != 5 {
		t.Errorf("Unwrap of a raw node changed it")
	}
	if Unwrap((*Value)(nil)) != nil {
		t.Errorf("Unwrap of nil *Value should be nil")
	}
}

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		name string
		v    any
		kind Kind
	}{
		{"null", nil, NullKind},
		{"nil mapping", (*Mapping)(nil), NullKind},
		{"int", 3, NumberKind},
		{"uint64", uint64(3), NumberKind},
		{"float", 3.5, NumberKind},
		{"json number", json.Number("3"), NumberKind},
		{"string", "s", StringKind},
		{"bool", false, BoolKind},
		{"mapping", MakeMapping(), MappingKind},
		{"sequence", MakeSequence(), SequenceKind},
		{"unknown", struct{}{}, UnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Wrap(tt.v)
			if got := v.Kind(); got != tt.kind {
				t.Fatalf("Kind() = %v, want %v", got, tt.kind)
			}
			preds := map[Kind]bool{
				MappingKind:  v.IsMapping(),
				SequenceKind: v.IsSequence(),
				StringKind:   v.IsString(),
				NumberKind:   v.IsNumber(),
				BoolKind:     v.IsBool(),
				NullKind:     v.IsNull(),
			}
			for k, got := range preds {
				if want := k == tt.kind; got != want {
					t.Errorf("predicate for %v = %v, want %v", k, got, want)
				}
			}
		})
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var kk Kind
		if err := kk.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if kk != k {
			t.Errorf("text round trip of %v gave %v", k, kk)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Comment")); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}

func TestTypeOf(t *testing.T) {
	tests := map[string]any{
		"map":     NewMapping(),
		"list":    MakeSequence(),
		"string":  "x",
		"number":  int8(1),
		"boolean": true,
		"null":    nil,
		"unknown": []int{1},
	}
	for want, v := range tests {
		if got := TypeOf(v); got != want {
			t.Errorf("TypeOf(%#v) = %q, want %q", v, got, want)
		}
	}
}

func TestInt(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
		err  error
	}{
		{"null", nil, 0, nil},
		{"int", 2, 2, nil},
		{"int64", int64(-7), -7, nil},
		{"uint8", uint8(200), 200, nil},
		{"integral float", 2.0, 2, nil},
		{"json number", json.Number("42"), 42, nil},
		{"fraction", 2.5, 0, ErrTypeMismatch},
		{"string", "2", 0, ErrTypeMismatch},
		{"mapping", MakeMapping(), 0, ErrTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.v).Int()
			if !errors.Is(err, tt.err) {
				t.Fatalf("Int() err = %v, want %v", err, tt.err)
			}
			if got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestScalarCoercions(t *testing.T) {
	if f, err := Wrap(3).Float64(); err != nil || f != 3.0 {
		t.Errorf("Float64() = %v, %v", f, err)
	}
	if f, err := Wrap(nil).Float64(); err != nil || f != 0 {
		t.Errorf("Float64() of null = %v, %v", f, err)
	}
	if _, err := Wrap(true).Float64(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Float64() of bool err = %v", err)
	}
	want := "type mismatch: cannot convert to double: node is string"
	if _, err := Wrap("s").Float64(); err == nil || err.Error() != want {
		t.Errorf("Float64() of string err = %v, want %q", err, want)
	}
	if b, err := Wrap(nil).Bool(); err != nil || b {
		t.Errorf("Bool() of null = %v, %v", b, err)
	}
	if b, err := Wrap(true).Bool(); err != nil || !b {
		t.Errorf("Bool() = %v, %v", b, err)
	}
	if _, err := Wrap(1).Bool(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Bool() of number err = %v", err)
	}
	if s, err := Wrap("v").Str(); err != nil || s != "v" {
		t.Errorf("Str() = %q, %v", s, err)
	}
	if _, err := List().Str(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Str() of list err = %v", err)
	}
	if i, err := Wrap(int64(1) << 40).Int64(); err != nil || i != 1<<40 {
		t.Errorf("Int64() = %d, %v", i, err)
	}
	if _, err := Wrap(uint64(1) << 63).Int64(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Int64() of huge uint64 err = %v", err)
	}
}

func TestAsContainers(t *testing.T) {
	if _, err := Wrap(nil).AsMapping(); !errors.Is(err, ErrNullValue) {
		t.Errorf("AsMapping() of null err = %v, want ErrNullValue", err)
	}
	if _, err := List(1).AsMapping(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsMapping() of list err = %v, want ErrTypeMismatch", err)
	}
	if _, err := Wrap(nil).AsSequence(); !errors.Is(err, ErrNullValue) {
		t.Errorf("AsSequence() of null err = %v, want ErrNullValue", err)
	}
	if _, err := NewMapping().AsSequence(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("AsSequence() of map err = %v, want ErrTypeMismatch", err)
	}
	m := MakeMapping()
	got, err := Wrap(m).AsMapping()
	if err != nil || got != m {
		t.Errorf("AsMapping() = %p, %v, want %p", got, err, m)
	}
}

func TestRequire(t *testing.T) {
	if _, err := Wrap(nil).Require(); !errors.Is(err, ErrNullValue) {
		t.Errorf("Require() of null err = %v", err)
	}
	v := Wrap(0)
	got, err := v.Require()
	if err != nil || got != v {
		t.Errorf("Require() = %v, %v", got, err)
	}
}

func TestShapeOps(t *testing.T) {
	containers := []*Value{
		Must(Must(NewMapping().Put("a", 1)).Put("b", 2)),
		List(1, 2, 3),
	}
	for _, v := range containers {
		t.Run(v.Kind().String(), func(t *testing.T) {
			if empty, err := v.IsEmpty(); err != nil || empty {
				t.Fatalf("IsEmpty() = %v, %v", empty, err)
			}
			got, err := v.Clear()
			if err != nil {
				t.Fatal(err)
			}
			if got != v {
				t.Errorf("Clear() returned a different wrapper")
			}
			if n, err := v.Size(); err != nil || n != 0 {
				t.Errorf("Size() after Clear() = %d, %v", n, err)
			}
			if empty, err := v.IsEmpty(); err != nil || !empty {
				t.Errorf("IsEmpty() after Clear() = %v, %v", empty, err)
			}
		})
	}
	for _, v := range []any{nil, 1, "s", false} {
		w := Wrap(v)
		if _, err := w.Size(); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("Size() of %v err = %v", v, err)
		}
		if _, err := w.IsEmpty(); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("IsEmpty() of %v err = %v", v, err)
		}
		if _, err := w.Clear(); !errors.Is(err, ErrTypeMismatch) {
			t.Errorf("Clear() of %v err = %v", v, err)
		}
	}
}

func TestNestedGet(t *testing.T) {
	doc := Must(NewMapping().Put("a", List(1, 2, 3)))
	got, err := Must(Must(doc.Get("a")).At(1)).Int()
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("a[1] = %d, want 2", got)
	}
}

func TestString(t *testing.T) {
	doc := Must(Must(NewMapping().Put("a", List(1, "x", nil))).Put("b", NewMapping()))
	tests := []struct {
		v    *Value
		want string
	}{
		{doc, `{"a":[1,"x",null],"b":{}}`},
		{List(), `[]`},
		{Wrap(nil), "null"},
		{Wrap("plain"), "plain"},
		{Wrap(1.5), "1.5"},
		{Wrap(true), "true"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}
