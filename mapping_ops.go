package jsom

import (
	"fmt"
	"maps"
	"slices"
)

// Get returns a view of the value at key. A missing key yields a null
// view, not an error.
func (v *Value) Get(key string) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	x, _ := m.Get(key)
	return Wrap(x), nil
}

// Put sets key to value.
func (v *Value) Put(key string, value any) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	m.Set(key, Unwrap(value))
	return v, nil
}

// PutIfAbsent sets key to value unless key is present with a non-null
// value.
func (v *Value) PutIfAbsent(key string, value any) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	putIfAbsent(m, key, Unwrap(value))
	return v, nil
}

func putIfAbsent(m *Mapping, key string, value any) {
	if cur, ok := m.Get(key); ok && KindOf(cur) != NullKind {
		return
	}
	m.Set(key, value)
}

// PutAll copies every entry of src, which may be a Mapping, a Value
// viewing one, or a map[string]any (visited in sorted key order).
func (v *Value) PutAll(src any) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	entries, err := entriesOf(src)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		m.Set(e.Key, Unwrap(e.Value))
	}
	return v, nil
}

// PutAllIfAbsent is PutAll applying PutIfAbsent per entry.
func (v *Value) PutAllIfAbsent(src any) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	entries, err := entriesOf(src)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		putIfAbsent(m, e.Key, Unwrap(e.Value))
	}
	return v, nil
}

func entriesOf(src any) ([]Entry, error) {
	if nm, ok := src.(map[string]any); ok {
		return sortedEntries(nm), nil
	}
	m, err := Wrap(src).AsMapping()
	if err != nil {
		return nil, err
	}
	return mappingEntries(m), nil
}

func sortedEntries(nm map[string]any) []Entry {
	res := make([]Entry, 0, len(nm))
	for _, k := range slices.Sorted(maps.Keys(nm)) {
		res = append(res, Entry{Key: k, Value: nm[k]})
	}
	return res
}

// RemoveKey removes key if present.
func (v *Value) RemoveKey(key string) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	m.Delete(key)
	return v, nil
}

// Remove removes s by kind of the node: the key s from a Mapping, or the
// first element equal to s from a Sequence.
func (v *Value) Remove(s string) (*Value, error) {
	switch v.Kind() {
	case MappingKind:
		return v.RemoveKey(s)
	case SequenceKind:
		return v.RemoveValue(s)
	default:
		return nil, mismatch("remove from", v.node)
	}
}

// Replace sets key to value only if key is present.
func (v *Value) Replace(key string, value any) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	if _, ok := m.Get(key); ok {
		m.Set(key, Unwrap(value))
	}
	return v, nil
}

// ReplaceIf sets key to newValue only if key is present and its value
// equals oldValue. Otherwise it does nothing.
func (v *Value) ReplaceIf(key string, oldValue, newValue any) (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	cur, ok := m.Get(key)
	if ok && Equal(cur, oldValue) {
		m.Set(key, Unwrap(newValue))
	}
	return v, nil
}

func (v *Value) ContainsKey(key string) (bool, error) {
	m, err := v.AsMapping()
	if err != nil {
		return false, err
	}
	_, ok := m.Get(key)
	return ok, nil
}

// Keys returns a new Sequence of the keys in insertion order.
func (v *Value) Keys() (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	res := &Sequence{elems: make([]any, 0, m.Len())}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		res.elems = append(res.elems, pair.Key)
	}
	return Wrap(res), nil
}

// Values returns a new Sequence of the values in insertion order. The
// values themselves are shared with the Mapping, but the Sequence is a
// snapshot: adding, removing or replacing its elements does not change
// the Mapping.
func (v *Value) Values() (*Value, error) {
	m, err := v.AsMapping()
	if err != nil {
		return nil, err
	}
	res := &Sequence{elems: make([]any, 0, m.Len())}
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		res.elems = append(res.elems, pair.Value)
	}
	return Wrap(res), nil
}

// Entry is a key and value of a Mapping.
type Entry struct {
	Key   string
	Value any
}

func (e Entry) String() string {
	return fmt.Sprintf("%s=%s", e.Key, Wrap(e.Value))
}
