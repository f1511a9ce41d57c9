package jsom

import (
	"iter"
	"runtime"
)

// Elements returns a lazy sequence over the raw elements of a Sequence.
func (v *Value) Elements() (iter.Seq[any], error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	return s.Values(), nil
}

// ParallelElements splits the elements of a Sequence into at most n
// contiguous partitions, in order, which may be consumed concurrently.
// n < 1 means GOMAXPROCS. Partitions only read the Sequence.
func (v *Value) ParallelElements(n int) ([]iter.Seq[any], error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	parts := partition(s.Len(), n)
	res := make([]iter.Seq[any], 0, len(parts))
	for _, r := range parts {
		res = append(res, func(yield func(any) bool) {
			for i := r[0]; i < r[1]; i++ {
				if !yield(s.At(i)) {
					return
				}
			}
		})
	}
	return res, nil
}

// Entries returns a lazy sequence over the entries of a Mapping in
// insertion order.
func (v *Value) Entries() (iter.Seq[Entry], error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	return entrySeq(m), nil
}

// ParallelEntries is ParallelElements for the entries of a Mapping.
func (v *Value) ParallelEntries(n int) ([]iter.Seq[Entry], error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	entries := mappingEntries(m)
	parts := partition(len(entries), n)
	res := make([]iter.Seq[Entry], 0, len(parts))
	for _, r := range parts {
		part := entries[r[0]:r[1]]
		res = append(res, func(yield func(Entry) bool) {
			for _, e := range part {
				if !yield(e) {
					return
				}
			}
		})
	}
	return res, nil
}

func entrySeq(m *Mapping) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(Entry{Key: pair.Key, Value: pair.Value}) {
				return
			}
		}
	}
}

// partition splits [0, size) into at most n contiguous ranges. There is
// always at least one range.
func partition(size, n int) [][2]int {
	if n < 1 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > size {
		n = max(size, 1)
	}
	res := make([][2]int, 0, n)
	chunk, rem := size/n, size%n
	lo := 0
	for i := 0; i < n; i++ {
		hi := lo + chunk
		if i < rem {
			hi++
		}
		res = append(res, [2]int{lo, hi})
		lo = hi
	}
	return res
}

// Filter returns the elements of seq for which keep is true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range seq {
			if keep(x) && !yield(x) {
				return
			}
		}
	}
}

// Map returns seq with f applied to every element.
func Map[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range seq {
			if !yield(f(x)) {
				return
			}
		}
	}
}

func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func Reduce[T, A any](seq iter.Seq[T], init A, f func(A, T) A) A {
	acc := init
	for x := range seq {
		acc = f(acc, x)
	}
	return acc
}
