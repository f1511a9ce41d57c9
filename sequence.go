package jsom

import (
	"encoding/json"
	"iter"
	"slices"
)

// Sequence is an ordered container of raw nodes with reference semantics.
//
// A Sequence returned by Slice is a view over its parent: element reads and
// writes, insertions and removals made through the view land in the parent
// and the view's length tracks them. Structural changes made to the parent
// outside the view invalidate it.
type Sequence struct {
	elems  []any
	parent *Sequence
	offset int
	size   int
}

// MakeSequence returns a Sequence holding elems, each unwrapped.
func MakeSequence(elems ...any) *Sequence {
	s := &Sequence{elems: make([]any, 0, len(elems))}
	for _, e := range elems {
		s.elems = append(s.elems, Unwrap(e))
	}
	return s
}

func (s *Sequence) Len() int {
	if s.parent == nil {
		return len(s.elems)
	}
	return s.size
}

// At returns the element at i; it panics if i is out of range.
func (s *Sequence) At(i int) any {
	if s.parent == nil {
		return s.elems[i]
	}
	if i < 0 || i >= s.size {
		panic(outOfRange(i, s.size))
	}
	return s.parent.At(s.offset + i)
}

func (s *Sequence) Set(i int, v any) {
	if s.parent == nil {
		s.elems[i] = v
		return
	}
	if i < 0 || i >= s.size {
		panic(outOfRange(i, s.size))
	}
	s.parent.Set(s.offset+i, v)
}

func (s *Sequence) Append(v any) {
	s.Insert(s.Len(), v)
}

func (s *Sequence) Insert(i int, v any) {
	if s.parent == nil {
		s.elems = slices.Insert(s.elems, i, v)
		return
	}
	if i < 0 || i > s.size {
		panic(outOfRange(i, s.size))
	}
	s.parent.Insert(s.offset+i, v)
	s.size++
}

// Delete removes and returns the element at i.
func (s *Sequence) Delete(i int) any {
	if s.parent == nil {
		v := s.elems[i]
		s.elems = slices.Delete(s.elems, i, i+1)
		return v
	}
	if i < 0 || i >= s.size {
		panic(outOfRange(i, s.size))
	}
	v := s.parent.Delete(s.offset + i)
	s.size--
	return v
}

func (s *Sequence) deleteRange(i, j int) {
	if s.parent == nil {
		s.elems = slices.Delete(s.elems, i, j)
		return
	}
	s.parent.deleteRange(s.offset+i, s.offset+j)
	s.size -= j - i
}

func (s *Sequence) Clear() {
	s.deleteRange(0, s.Len())
}

// Slice returns a view of the half open range [from, to).
func (s *Sequence) Slice(from, to int) *Sequence {
	if from < 0 || to > s.Len() || from > to {
		panic(outOfRange(from, s.Len()))
	}
	return &Sequence{parent: s, offset: from, size: to - from}
}

// All iterates over index, element pairs in order.
func (s *Sequence) All() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Values iterates over elements in order.
func (s *Sequence) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

// Items returns a copy of the elements.
func (s *Sequence) Items() []any {
	if s.parent == nil {
		return slices.Clone(s.elems)
	}
	return slices.Collect(s.Values())
}

func (s *Sequence) MarshalJSON() ([]byte, error) {
	items := s.Items()
	if items == nil {
		items = []any{}
	}
	return json.Marshal(items)
}
