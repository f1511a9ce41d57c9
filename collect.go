package jsom

import (
	"context"
	"fmt"
	"iter"

	"github.com/signadot/jsom/debug"

	"golang.org/x/sync/errgroup"
)

// Collector describes a terminal accumulation of a lazy sequence of T into
// an R through an intermediate A. Combine merges the partial result of a
// later partition into that of an earlier one.
type Collector[T, A, R any] struct {
	Supply     func() A
	Accumulate func(A, T) A
	Combine    func(A, A) A
	Finish     func(A) R
}

// ToSequence collects values into a new Sequence, unwrapping each.
func ToSequence() Collector[any, *Sequence, *Sequence] {
	return Collector[any, *Sequence, *Sequence]{
		Supply: func() *Sequence { return &Sequence{} },
		Accumulate: func(s *Sequence, x any) *Sequence {
			s.Append(Unwrap(x))
			return s
		},
		Combine: func(a, b *Sequence) *Sequence {
			for x := range b.Values() {
				a.Append(x)
			}
			return a
		},
		Finish: func(s *Sequence) *Sequence { return s },
	}
}

// ToMapping collects entries into a new Mapping, unwrapping each value.
// A later entry with the same key overwrites an earlier one.
func ToMapping() Collector[Entry, *Mapping, *Mapping] {
	return Collector[Entry, *Mapping, *Mapping]{
		Supply: MakeMapping,
		Accumulate: func(m *Mapping, e Entry) *Mapping {
			m.Set(e.Key, Unwrap(e.Value))
			return m
		},
		Combine: func(a, b *Mapping) *Mapping {
			for pair := b.Oldest(); pair != nil; pair = pair.Next() {
				a.Set(pair.Key, pair.Value)
			}
			return a
		},
		Finish: func(m *Mapping) *Mapping { return m },
	}
}

// Collect accumulates seq with c.
func Collect[T, A, R any](seq iter.Seq[T], c Collector[T, A, R]) R {
	acc := c.Supply()
	for x := range seq {
		acc = c.Accumulate(acc, x)
	}
	return c.Finish(acc)
}

// CollectParallel accumulates each partition on its own goroutine and
// combines the partial results in partition order.
func CollectParallel[T, A, R any](ctx context.Context, parts []iter.Seq[T], c Collector[T, A, R]) (R, error) {
	var zero R
	partials := make([]A, len(parts))
	g, ctx := errgroup.WithContext(ctx)
	for i, part := range parts {
		g.Go(func() error {
			acc := c.Supply()
			for x := range part {
				if err := ctx.Err(); err != nil {
					return err
				}
				acc = c.Accumulate(acc, x)
			}
			partials[i] = acc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return zero, fmt.Errorf("parallel collect: %w", err)
	}
	if debug.Collect() {
		debug.Logf("combining %d partitions\n", len(partials))
	}
	if len(partials) == 0 {
		return c.Finish(c.Supply()), nil
	}
	acc := partials[0]
	for _, p := range partials[1:] {
		acc = c.Combine(acc, p)
	}
	return c.Finish(acc), nil
}

// KeyMatcher matches entries whose key is in a fixed set.
type KeyMatcher struct {
	keys map[string]struct{}
}

// MatchingKeys returns a KeyMatcher for keys. A nil keys is an error; an
// empty one matches nothing.
func MatchingKeys(keys []string) (*KeyMatcher, error) {
	if keys == nil {
		return nil, fmt.Errorf("%w: key list must not be null", ErrNullValue)
	}
	km := &KeyMatcher{keys: make(map[string]struct{}, len(keys))}
	for _, k := range keys {
		km.keys[k] = struct{}{}
	}
	return km, nil
}

func (km *KeyMatcher) Match(e *Entry) (bool, error) {
	if e == nil {
		return false, fmt.Errorf("%w: cannot get key of null entry", ErrNullValue)
	}
	_, ok := km.keys[e.Key]
	return ok, nil
}

// Func adapts km for use with Filter.
func (km *KeyMatcher) Func() func(Entry) bool {
	return func(e Entry) bool {
		_, ok := km.keys[e.Key]
		return ok
	}
}
