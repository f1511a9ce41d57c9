package jsom

import (
	"github.com/signadot/jsom/debug"
)

// DeepClone copies v structurally. Every Mapping and Sequence in the result
// is new; scalar leaves are shared since they are immutable. A
// map[string]any is first materialized as a Mapping, and a []any or any
// other Go array or slice as a Sequence.
func DeepClone(v any) *Value {
	return Wrap(deepClone(v))
}

func deepClone(v any) any {
	v = Unwrap(v)
	switch x := v.(type) {
	case []any:
		v = MakeSequence(x...)
	case map[string]any:
		m := MakeMapping()
		for _, e := range sortedEntries(x) {
			m.Set(e.Key, Unwrap(e.Value))
		}
		v = m
	default:
		if elems, ok := nativeList(v); ok {
			if elems == nil {
				return nil
			}
			v = MakeSequence(elems.([]any)...)
		}
	}
	switch KindOf(v) {
	case SequenceKind:
		s := v.(*Sequence)
		if debug.Clone() {
			debug.Logf("clone sequence of %d elements\n", s.Len())
		}
		return Collect(Map(s.Values(), deepClone), ToSequence())
	case MappingKind:
		m := v.(*Mapping)
		if debug.Clone() {
			debug.Logf("clone mapping of %d entries\n", m.Len())
		}
		return Collect(Map(entrySeq(m), cloneEntry), ToMapping())
	default:
		return v
	}
}

func cloneEntry(e Entry) Entry {
	return Entry{Key: e.Key, Value: deepClone(e.Value)}
}
