package jsom

import (
	"encoding/json"
	"fmt"
)

// Kind is the closed set of node kinds a tree may hold.
type Kind int

const (
	NullKind Kind = iota
	NumberKind
	StringKind
	BoolKind
	MappingKind
	SequenceKind
	UnknownKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		MappingKind:  "Mapping",
		SequenceKind: "Sequence",
		StringKind:   "String",
		NumberKind:   "Number",
		BoolKind:     "Bool",
		NullKind:     "Null",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":     NullKind,
		"Bool":     BoolKind,
		"Number":   NumberKind,
		"String":   StringKind,
		"Sequence": SequenceKind,
		"Mapping":  MappingKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		NumberKind,
		StringKind,
		BoolKind,
		MappingKind,
		SequenceKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case MappingKind, SequenceKind:
		return false
	default:
		return true
	}
}

// KindOf reports the kind of a raw node. Wrappers are unwrapped first.
func KindOf(v any) Kind {
	switch x := v.(type) {
	case nil:
		return NullKind
	case *Value:
		return KindOf(x.node)
	case *Mapping:
		if x == nil {
			return NullKind
		}
		return MappingKind
	case *Sequence:
		if x == nil {
			return NullKind
		}
		return SequenceKind
	case string:
		return StringKind
	case bool:
		return BoolKind
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return NumberKind
	default:
		return UnknownKind
	}
}

// TypeOf names the kind of v the way diagnostics and error messages do.
func TypeOf(v any) string {
	switch KindOf(v) {
	case MappingKind:
		return "map"
	case SequenceKind:
		return "list"
	case StringKind:
		return "string"
	case NumberKind:
		return "number"
	case BoolKind:
		return "boolean"
	case NullKind:
		return "null"
	default:
		return "unknown"
	}
}
