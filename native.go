package jsom

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
)

// FromNative adopts plain Go structures into a tree: map[string]any
// becomes a Mapping with keys in sorted order and []any, or any other Go
// array or slice, a Sequence, at every depth. Existing Mappings and Sequences are kept as they are.
func FromNative(v any) *Value {
	return Wrap(fromNative(Unwrap(v)))
}

func fromNative(v any) any {
	switch x := v.(type) {
	case map[string]any:
		m := MakeMapping()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			m.Set(k, fromNative(Unwrap(x[k])))
		}
		return m
	case map[any]any:
		m := MakeMapping()
		keys := make([]string, 0, len(x))
		byKey := make(map[string]any, len(x))
		for k, val := range x {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			byKey[ks] = val
		}
		slices.Sort(keys)
		for _, k := range keys {
			m.Set(k, fromNative(Unwrap(byKey[k])))
		}
		return m
	case []any:
		s := &Sequence{elems: make([]any, len(x))}
		for i, e := range x {
			s.elems[i] = fromNative(Unwrap(e))
		}
		return s
	default:
		if elems, ok := nativeList(v); ok {
			return fromNative(elems)
		}
		return v
	}
}

// nativeList reads Go arrays and typed slices such as []int or [3]any as
// []any. A nil slice reads as null.
func nativeList(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return nil, true
		}
	case reflect.Array:
	default:
		return nil, false
	}
	res := make([]any, rv.Len())
	for i := range res {
		res[i] = rv.Index(i).Interface()
	}
	return res, true
}

// ToNative converts a tree to map[string]any, []any and scalars.
func ToNative(v any) any {
	v = Unwrap(v)
	switch KindOf(v) {
	case MappingKind:
		m := v.(*Mapping)
		res := make(map[string]any, m.Len())
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			res[pair.Key] = ToNative(pair.Value)
		}
		return res
	case SequenceKind:
		s := v.(*Sequence)
		res := make([]any, 0, s.Len())
		for x := range s.Values() {
			res = append(res, ToNative(x))
		}
		return res
	case NullKind:
		return nil
	default:
		return v
	}
}
