package jsom

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromNative(t *testing.T) {
	in := map[string]any{
		"b": []any{1, map[any]any{2: "two", "one": 1}},
		"a": nil,
	}
	v := FromNative(in)
	if diff := cmp.Diff([]any{"a", "b"}, keysOf(t, v)); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	inner := Must(v.GetPath("$.b[1]"))
	if !inner.IsMapping() {
		t.Fatalf("map[any]any not adopted: %s", inner.Kind())
	}
	if diff := cmp.Diff([]any{"2", "one"}, keysOf(t, inner)); diff != "" {
		t.Errorf("inner keys (-want +got):\n%s", diff)
	}
	want := map[string]any{
		"a": nil,
		"b": []any{1, map[string]any{"2": "two", "one": 1}},
	}
	if diff := cmp.Diff(want, ToNative(v)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got := FromNative(3).Raw(); got != 3 {
		t.Errorf("FromNative(3) = %v", got)
	}
}

type todo struct {
	Title string   `json:"title"`
	Done  bool     `json:"done"`
	Year  int      `json:"year"`
	Tags  []string `json:"tags"`
}

func TestDecode(t *testing.T) {
	v := Must(Must(Must(NewMapping().Put("title", "write")).Put("done", true)).Put("tags", List("a", "b")))
	Must(v.Put("year", int64(2017)))
	var got todo
	if err := v.Decode(&got); err != nil {
		t.Fatal(err)
	}
	want := todo{Title: "write", Done: true, Year: 2017, Tags: []string{"a", "b"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	var bad todo
	if err := List(1).Decode(&bad); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Decode of list into struct err = %v", err)
	}
	var xs []int
	if err := List(1, 2).Decode(&xs); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{1, 2}, xs); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTruth(t *testing.T) {
	tests := []struct {
		v    any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0, false},
		{0.0, false},
		{-2, true},
		{"", false},
		{"x", true},
		{MakeSequence(), false},
		{MakeSequence(nil), true},
		{MakeMapping(), false},
		{Wrap(mapOf("a", nil)), true},
	}
	for _, tt := range tests {
		if got := Truth(tt.v); got != tt.want {
			t.Errorf("Truth(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}
