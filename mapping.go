package jsom

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Mapping is a string keyed container which preserves insertion order.
// Setting an existing key keeps its original position.
type Mapping = orderedmap.OrderedMap[string, any]

// MakeMapping returns an empty raw Mapping.
func MakeMapping() *Mapping {
	return orderedmap.New[string, any]()
}

func clearMapping(m *Mapping) {
	keys := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	for _, k := range keys {
		m.Delete(k)
	}
}

func mappingEntries(m *Mapping) []Entry {
	res := make([]Entry, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		res = append(res, Entry{Key: pair.Key, Value: pair.Value})
	}
	return res
}
