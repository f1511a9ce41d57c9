package jsom

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func todos() *Value {
	return FromNative([]any{
		map[string]any{"title": "write", "done": false, "year": 2015},
		map[string]any{"title": "read", "done": true, "year": 2020},
		map[string]any{"title": "sleep", "done": false},
		map[string]any{"title": "plan", "done": false, "year": 2017},
	})
}

func undone(x any) bool {
	done, err := Must(Wrap(x).Get("done")).Bool()
	return err == nil && !done
}

func TestFilterCountReduce(t *testing.T) {
	elems := Must(todos().Elements())
	if n := Count(Filter(elems, undone)); n != 3 {
		t.Errorf("undone count = %d, want 3", n)
	}
	latest := Reduce(Filter(elems, undone), 0, func(acc int, x any) int {
		return max(acc, Must(Must(Wrap(x).Get("year")).Int()))
	})
	if latest != 2017 {
		t.Errorf("latest undone year = %d, want 2017", latest)
	}
	titles := Collect(Map(Filter(elems, undone), func(x any) any {
		return Must(Wrap(x).Get("title"))
	}), ToSequence())
	if diff := cmp.Diff([]any{"write", "sleep", "plan"}, titles.Items()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestElementsKind(t *testing.T) {
	if _, err := NewMapping().Elements(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Elements() of map err = %v", err)
	}
	if _, err := List().Entries(); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Entries() of list err = %v", err)
	}
	if _, err := Wrap(nil).ParallelElements(2); !errors.Is(err, ErrNullValue) {
		t.Errorf("ParallelElements() of null err = %v", err)
	}
}

func TestToMappingLastWins(t *testing.T) {
	entries := slices.Values([]Entry{{"k", 1}, {"j", 0}, {"k", 2}})
	m := Wrap(Collect(entries, ToMapping()))
	if n := Must(m.Size()); n != 2 {
		t.Fatalf("Size() = %d, want 2", n)
	}
	if got := Must(Must(m.Get("k")).Int()); got != 2 {
		t.Errorf("k = %d, want 2", got)
	}
	if diff := cmp.Diff([]any{"k", "j"}, keysOf(t, m)); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
}

func TestToSequenceUnwraps(t *testing.T) {
	s := Collect(slices.Values([]any{Wrap(1), List(2), "x"}), ToSequence())
	for x := range s.Values() {
		if _, ok := x.(*Value); ok {
			t.Errorf("collected a wrapper: %v", x)
		}
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestEntriesFilterByKeys(t *testing.T) {
	m := FromNative(map[string]any{"a": 1, "b": 2, "c": 3, "d": 4})
	km, err := MatchingKeys([]string{"b", "d", "z"})
	if err != nil {
		t.Fatal(err)
	}
	res := Wrap(Collect(Filter(Must(m.Entries()), km.Func()), ToMapping()))
	want := map[string]any{"b": 2, "d": 4}
	if diff := cmp.Diff(want, ToNative(res)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	ok, err := km.Match(&Entry{Key: "b"})
	if err != nil || !ok {
		t.Errorf("Match(b) = %v, %v", ok, err)
	}
	ok, err = km.Match(&Entry{Key: "a"})
	if err != nil || ok {
		t.Errorf("Match(a) = %v, %v", ok, err)
	}
	if _, err := km.Match(nil); !errors.Is(err, ErrNullValue) {
		t.Errorf("Match(nil) err = %v", err)
	}
	if _, err := MatchingKeys(nil); !errors.Is(err, ErrNullValue) {
		t.Errorf("MatchingKeys(nil) err = %v", err)
	}
	none, err := MatchingKeys([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if n := Count(Filter(Must(m.Entries()), none.Func())); n != 0 {
		t.Errorf("empty key set matched %d entries", n)
	}
}

func TestPartition(t *testing.T) {
	tests := []struct {
		size, n int
		want    [][2]int
	}{
		{10, 3, [][2]int{{0, 4}, {4, 7}, {7, 10}}},
		{4, 2, [][2]int{{0, 2}, {2, 4}}},
		{2, 5, [][2]int{{0, 1}, {1, 2}}},
		{0, 4, [][2]int{{0, 0}}},
		{3, 1, [][2]int{{0, 3}}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, partition(tt.size, tt.n)); diff != "" {
			t.Errorf("partition(%d, %d) (-want +got):\n%s", tt.size, tt.n, diff)
		}
	}
	if got := partition(100, 0); len(got) < 1 || got[len(got)-1][1] != 100 {
		t.Errorf("partition(100, 0) = %v", got)
	}
}

func TestCollectParallelOrder(t *testing.T) {
	items := make([]any, 100)
	for i := range items {
		items[i] = i
	}
	l := List(items...)
	for _, n := range []int{0, 1, 3, 7, 200} {
		parts := Must(l.ParallelElements(n))
		got, err := CollectParallel(context.Background(), parts, ToSequence())
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(got, l) {
			t.Errorf("n=%d: parallel collect lost order", n)
		}
	}

	m := NewMapping()
	for _, k := range []string{"q", "w", "e", "r", "t", "y"} {
		Must(m.Put(k, k))
	}
	parts := Must(m.ParallelEntries(4))
	got, err := CollectParallel(context.Background(), parts, ToMapping())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(keysOf(t, m), keysOf(t, Wrap(got))); diff != "" {
		t.Errorf("key order (-want +got):\n%s", diff)
	}
}

func TestCollectParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	parts := Must(List(1, 2, 3).ParallelElements(2))
	if _, err := CollectParallel(ctx, parts, ToSequence()); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCollectParallelEmpty(t *testing.T) {
	got, err := CollectParallel(context.Background(), nil, ToSequence())
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 0 {
		t.Errorf("Len() = %d, want 0", got.Len())
	}
}
