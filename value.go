package jsom

import (
	"encoding/json"
	"fmt"
	"math"
)

// Value is a transient view of a single raw node. It never holds another
// Value. Mutations through a Value mutate the tree it was reached from.
//
// Values should not be kept across structural changes made elsewhere in
// the tree; create them as needed.
type Value struct {
	node any
}

// Wrap returns a Value viewing v. If v is already a *Value it is returned
// as is, so wrapping never nests.
func Wrap(v any) *Value {
	if x, ok := v.(*Value); ok {
		if x == nil {
			return &Value{}
		}
		return x
	}
	return &Value{node: v}
}

// Unwrap returns the raw node under v if v is a *Value, otherwise v.
func Unwrap(v any) any {
	if x, ok := v.(*Value); ok {
		if x == nil {
			return nil
		}
		return x.node
	}
	return v
}

// NewMapping returns a Value viewing a new empty Mapping.
func NewMapping() *Value {
	return Wrap(MakeMapping())
}

// List returns a Value viewing a new Sequence of elems.
func List(elems ...any) *Value {
	return Wrap(MakeSequence(elems...))
}

// Must returns v, panicking if err is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Raw returns the node under v.
func (v *Value) Raw() any { return v.node }

func (v *Value) Kind() Kind { return KindOf(v.node) }

func (v *Value) IsMapping() bool  { return v.Kind() == MappingKind }
func (v *Value) IsSequence() bool { return v.Kind() == SequenceKind }
func (v *Value) IsString() bool   { return v.Kind() == StringKind }
func (v *Value) IsNumber() bool   { return v.Kind() == NumberKind }
func (v *Value) IsBool() bool     { return v.Kind() == BoolKind }
func (v *Value) IsNull() bool     { return v.Kind() == NullKind }

// AsMapping returns the node as a Mapping.
func (v *Value) AsMapping() (*Mapping, error) {
	switch v.Kind() {
	case MappingKind:
		return v.node.(*Mapping), nil
	case NullKind:
		return nil, fmt.Errorf("%w: cannot cast null to map", ErrNullValue)
	default:
		return nil, mismatch("cast to map", v.node)
	}
}

// AsSequence returns the node as a Sequence.
func (v *Value) AsSequence() (*Sequence, error) {
	switch v.Kind() {
	case SequenceKind:
		return v.node.(*Sequence), nil
	case NullKind:
		return nil, fmt.Errorf("%w: cannot cast null to list", ErrNullValue)
	default:
		return nil, mismatch("cast to list", v.node)
	}
}

// Require returns ErrNullValue if the node is null.
func (v *Value) Require() (*Value, error) {
	if v.IsNull() {
		return nil, fmt.Errorf("%w: value is required", ErrNullValue)
	}
	return v, nil
}

// Int64 coerces a number to int64. Null yields 0. Numbers with a
// fractional part or out of range do not coerce.
func (v *Value) Int64() (int64, error) {
	if v.IsNull() {
		return 0, nil
	}
	n, ok := numberOf(v.node)
	if !ok {
		return 0, mismatch("convert to integer", v.node)
	}
	i, ok := n.int64()
	if !ok {
		return 0, fmt.Errorf("%w: %v is not an integer", ErrTypeMismatch, v.node)
	}
	return i, nil
}

func (v *Value) Int() (int, error) {
	i, err := v.Int64()
	if err != nil {
		return 0, err
	}
	if i < math.MinInt || i > math.MaxInt {
		return 0, fmt.Errorf("%w: %d overflows int", ErrTypeMismatch, i)
	}
	return int(i), nil
}

// Float64 coerces a number to float64. Null yields 0.
func (v *Value) Float64() (float64, error) {
	if v.IsNull() {
		return 0, nil
	}
	n, ok := numberOf(v.node)
	if !ok {
		return 0, mismatch("convert to double", v.node)
	}
	return n.f, nil
}

// Bool coerces a boolean. Null yields false.
func (v *Value) Bool() (bool, error) {
	switch x := v.node.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	}
	if v.IsNull() {
		return false, nil
	}
	return false, mismatch("convert to boolean", v.node)
}

// Str coerces a string. Null yields "".
func (v *Value) Str() (string, error) {
	switch x := v.node.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	}
	if v.IsNull() {
		return "", nil
	}
	return "", mismatch("convert to string", v.node)
}

// String renders scalars plainly, null as "null" and containers as compact
// JSON.
func (v *Value) String() string {
	switch v.Kind() {
	case NullKind:
		return "null"
	case MappingKind, SequenceKind:
		d, err := json.Marshal(v.node)
		if err != nil {
			return fmt.Sprintf("<%s: %v>", v.Kind(), err)
		}
		return string(d)
	default:
		return fmt.Sprint(v.node)
	}
}

func (v *Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.node)
}

// Size returns the number of entries of a Mapping or elements of a
// Sequence.
func (v *Value) Size() (int, error) {
	switch v.Kind() {
	case MappingKind:
		return v.node.(*Mapping).Len(), nil
	case SequenceKind:
		return v.node.(*Sequence).Len(), nil
	default:
		return 0, mismatch("get size of", v.node)
	}
}

func (v *Value) IsEmpty() (bool, error) {
	n, err := v.Size()
	if err != nil {
		return false, mismatch("check if empty", v.node)
	}
	return n == 0, nil
}

// Clear removes all entries of a Mapping or elements of a Sequence.
func (v *Value) Clear() (*Value, error) {
	switch v.Kind() {
	case MappingKind:
		clearMapping(v.node.(*Mapping))
	case SequenceKind:
		v.node.(*Sequence).Clear()
	default:
		return nil, mismatch("clear", v.node)
	}
	return v, nil
}
