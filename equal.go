package jsom

import (
	"cmp"
	"reflect"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal. Values are
// unwrapped first. Mapping equality ignores key order, Sequence equality
// does not, and numbers compare by value across Go numeric types.
func Equal(a, b any) bool {
	a, b = Unwrap(a), Unwrap(b)
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return false
	}
	switch ka {
	case NullKind:
		return true
	case BoolKind:
		return a.(bool) == b.(bool)
	case StringKind:
		return a.(string) == b.(string)
	case NumberKind:
		na, _ := numberOf(a)
		nb, _ := numberOf(b)
		return compareNumbers(na, nb) == 0
	case SequenceKind:
		sa, sb := a.(*Sequence), b.(*Sequence)
		if sa == sb {
			return true
		}
		if sa.Len() != sb.Len() {
			return false
		}
		for i, x := range sa.All() {
			if !Equal(x, sb.At(i)) {
				return false
			}
		}
		return true
	case MappingKind:
		ma, mb := a.(*Mapping), b.(*Mapping)
		if ma == mb {
			return true
		}
		if ma.Len() != mb.Len() {
			return false
		}
		for pair := ma.Oldest(); pair != nil; pair = pair.Next() {
			bv, ok := mb.Get(pair.Key)
			if !ok || !Equal(pair.Value, bv) {
				return false
			}
		}
		return true
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Compare(a, b) == 0 exactly when Equal(a, b) for well formed trees.
func Compare(a, b any) int {
	a, b = Unwrap(a), Unwrap(b)
	ka, kb := KindOf(a), KindOf(b)
	if ka != kb {
		return cmp.Compare(rank(ka), rank(kb))
	}
	switch ka {
	case BoolKind:
		ba, bb := a.(bool), b.(bool)
		if ba == bb {
			return 0
		}
		if !ba {
			return -1
		}
		return 1
	case NumberKind:
		na, _ := numberOf(a)
		nb, _ := numberOf(b)
		return compareNumbers(na, nb)
	case StringKind:
		return strings.Compare(a.(string), b.(string))
	case SequenceKind:
		return compareSequences(a.(*Sequence), b.(*Sequence))
	case MappingKind:
		return compareMappings(a.(*Mapping), b.(*Mapping))
	}
	return 0
}

// rank returns the sorting rank of a kind.
// Order: Null < Bool < Number < String < Sequence < Mapping
func rank(k Kind) int {
	switch k {
	case NullKind:
		return 1
	case BoolKind:
		return 2
	case NumberKind:
		return 3
	case StringKind:
		return 4
	case SequenceKind:
		return 5
	case MappingKind:
		return 6
	}
	return 100
}

func compareSequences(a, b *Sequence) int {
	minLen := min(a.Len(), b.Len())
	for i := 0; i < minLen; i++ {
		if c := Compare(a.At(i), b.At(i)); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

// mappings compare by sorted keys so that key order does not matter.
func compareMappings(a, b *Mapping) int {
	keysA := sortedKeys(a)
	keysB := sortedKeys(b)
	minLen := min(len(keysA), len(keysB))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		va, _ := a.Get(keysA[i])
		vb, _ := b.Get(keysB[i])
		if c := Compare(va, vb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}

func sortedKeys(m *Mapping) []string {
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	slices.Sort(keys)
	return keys
}
