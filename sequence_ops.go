package jsom

import (
	"fmt"
	"slices"
)

// At returns a view of the element at index.
func (v *Value) At(index int) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= s.Len() {
		return nil, outOfRange(index, s.Len())
	}
	return Wrap(s.At(index)), nil
}

// Add appends value.
func (v *Value) Add(value any) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	s.Append(Unwrap(value))
	return v, nil
}

// Insert inserts value at index, shifting later elements up.
func (v *Value) Insert(index int, value any) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	if index < 0 || index > s.Len() {
		return nil, outOfRange(index, s.Len())
	}
	s.Insert(index, Unwrap(value))
	return v, nil
}

// AddAll appends values in order.
func (v *Value) AddAll(values ...any) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	for _, x := range values {
		s.Append(Unwrap(x))
	}
	return v, nil
}

// InsertAll inserts values starting at index, keeping their order.
func (v *Value) InsertAll(index int, values ...any) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	if index < 0 || index > s.Len() {
		return nil, outOfRange(index, s.Len())
	}
	for _, x := range values {
		s.Insert(index, Unwrap(x))
		index++
	}
	return v, nil
}

// RemoveAt removes the element at index.
func (v *Value) RemoveAt(index int) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= s.Len() {
		return nil, outOfRange(index, s.Len())
	}
	s.Delete(index)
	return v, nil
}

// RemoveValue removes the first element equal to value, if any.
func (v *Value) RemoveValue(value any) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	if i := indexOf(s, Unwrap(value)); i >= 0 {
		s.Delete(i)
	}
	return v, nil
}

// Set replaces the element at index.
func (v *Value) Set(index int, value any) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= s.Len() {
		return nil, outOfRange(index, s.Len())
	}
	s.Set(index, Unwrap(value))
	return v, nil
}

// IndexOf returns the index of the first element equal to value, or -1.
func (v *Value) IndexOf(value any) (int, error) {
	s, err := v.AsSequence()
	if err != nil {
		return -1, err
	}
	return indexOf(s, Unwrap(value)), nil
}

// LastIndexOf returns the index of the last element equal to value, or -1.
func (v *Value) LastIndexOf(value any) (int, error) {
	s, err := v.AsSequence()
	if err != nil {
		return -1, err
	}
	value = Unwrap(value)
	for i := s.Len() - 1; i >= 0; i-- {
		if Equal(s.At(i), value) {
			return i, nil
		}
	}
	return -1, nil
}

func indexOf(s *Sequence, value any) int {
	for i, x := range s.All() {
		if Equal(x, value) {
			return i
		}
	}
	return -1
}

func (v *Value) Contains(value any) (bool, error) {
	i, err := v.IndexOf(value)
	return i >= 0, err
}

// ContainsAll reports whether every one of values is contained.
func (v *Value) ContainsAll(values ...any) (bool, error) {
	s, err := v.AsSequence()
	if err != nil {
		return false, err
	}
	for _, x := range values {
		if indexOf(s, Unwrap(x)) < 0 {
			return false, nil
		}
	}
	return true, nil
}

// Sort stably sorts the elements with cmp, which receives raw nodes.
// Compare is a suitable cmp.
func (v *Value) Sort(cmp func(a, b any) int) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	items := s.Items()
	slices.SortStableFunc(items, cmp)
	for i, x := range items {
		s.Set(i, x)
	}
	return v, nil
}

// SubList returns a view of the elements in [from, to). Changes made
// through the view are visible in v.
func (v *Value) SubList(from, to int) (*Value, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	if from < 0 || to > s.Len() || from > to {
		return nil, fmt.Errorf("%w: range [%d, %d) (len %d)", ErrIndexOutOfRange, from, to, s.Len())
	}
	return Wrap(s.Slice(from, to)), nil
}

// ToSlice returns a copy of the raw elements.
func (v *Value) ToSlice() ([]any, error) {
	s, err := v.AsSequence()
	if err != nil {
		return nil, err
	}
	return s.Items(), nil
}
