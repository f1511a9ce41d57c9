package jsom

import (
	"errors"
	"fmt"
)

var (
	// ErrNullValue is returned when an operation requires a present value
	// and finds null.
	ErrNullValue = errors.New("null value")

	// ErrTypeMismatch is returned when an operation is applied to a node
	// whose kind does not support it.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexOutOfRange is returned for sequence indices or ranges
	// outside the sequence.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func mismatch(op string, v any) error {
	return fmt.Errorf("%w: cannot %s: node is %s", ErrTypeMismatch, op, TypeOf(v))
}

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d (len %d)", ErrIndexOutOfRange, index, size)
}
