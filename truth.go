package jsom

// Truth reports whether a node is truthy: non-empty containers and
// strings, non-zero numbers and true.
func Truth(v any) bool {
	v = Unwrap(v)
	switch KindOf(v) {
	case MappingKind:
		return v.(*Mapping).Len() != 0
	case SequenceKind:
		return v.(*Sequence).Len() != 0
	case StringKind:
		return v.(string) != ""
	case NumberKind:
		n, _ := numberOf(v)
		return n.f != 0
	case BoolKind:
		return v.(bool)
	case NullKind:
		return false
	default:
		return v != nil
	}
}
