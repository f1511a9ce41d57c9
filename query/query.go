// Package query filters tree elements with compiled expressions.
//
// An expression is evaluated against each element. When the element is a
// Mapping its keys are variables; the element itself is always available
// as "it":
//
//	p, err := query.Compile("done == false")
//	n, err := query.Count(todo, p)
//
// Expressions may also call getpath(node, path), listpath(node, path) and
// getenv(name).
package query

import (
	"errors"
	"fmt"
	"iter"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/debug"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

var (
	ErrCompile = errors.New("compile error")
	ErrEval    = errors.New("eval error")
)

// Predicate is a compiled filter expression.
type Predicate struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Predicate, error) {
	prg, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompile, err)
	}
	return &Predicate{src: src, prg: prg}, nil
}

func (p *Predicate) String() string { return p.src }

// Match evaluates p against node. Non boolean results are converted
// with jsom.Truth.
func (p *Predicate) Match(node any) (bool, error) {
	native := jsom.ToNative(node)
	env := map[string]any{}
	if m, ok := native.(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["it"] = native
	res, err := expr.Run(p.prg, env)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrEval, p.src, err)
	}
	if debug.Query() {
		debug.Logf("%s on %s -> %v\n", p.src, jsom.Wrap(node), res)
	}
	if b, ok := res.(bool); ok {
		return b, nil
	}
	return jsom.Truth(jsom.FromNative(res)), nil
}

// Filter returns the elements of seq matched by p. Evaluation errors are
// treated as non matches; use Select to observe them.
func (p *Predicate) Filter(seq iter.Seq[any]) iter.Seq[any] {
	return jsom.Filter(seq, func(x any) bool {
		ok, err := p.Match(x)
		return err == nil && ok
	})
}

// Select returns a new Sequence of the elements of the sequence under v
// matched by p.
func Select(v *jsom.Value, p *Predicate) (*jsom.Value, error) {
	elems, err := v.Elements()
	if err != nil {
		return nil, err
	}
	c := jsom.ToSequence()
	acc := c.Supply()
	for x := range elems {
		ok, err := p.Match(x)
		if err != nil {
			return nil, err
		}
		if ok {
			acc = c.Accumulate(acc, x)
		}
	}
	return jsom.Wrap(c.Finish(acc)), nil
}

// SelectEntries returns a new Mapping of the entries of the mapping under
// v whose values are matched by p.
func SelectEntries(v *jsom.Value, p *Predicate) (*jsom.Value, error) {
	entries, err := v.Entries()
	if err != nil {
		return nil, err
	}
	c := jsom.ToMapping()
	acc := c.Supply()
	for e := range entries {
		ok, err := p.Match(e.Value)
		if err != nil {
			return nil, err
		}
		if ok {
			acc = c.Accumulate(acc, e)
		}
	}
	return jsom.Wrap(c.Finish(acc)), nil
}

// Count returns the number of elements of the sequence under v matched by
// p.
func Count(v *jsom.Value, p *Predicate) (int, error) {
	sel, err := Select(v, p)
	if err != nil {
		return 0, err
	}
	return sel.Size()
}
