// Package patch applies RFC 6902 JSON Patch and RFC 7386 JSON Merge Patch
// documents to trees.
//
// Patched mappings come back with their keys in sorted order.
package patch

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"
	"github.com/signadot/jsom/debug"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Apply applies ops, a sequence of JSON Patch operations, to a copy of
// doc.
func Apply(doc, ops any) (*jsom.Value, error) {
	d, err := json.Marshal(jsom.Wrap(ops))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return ApplyJSON(doc, d)
}

// ApplyJSON is Apply with the operations given as JSON text.
func ApplyJSON(doc any, ops []byte) (*jsom.Value, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	d, err := json.Marshal(jsom.Wrap(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch %d ops\n", len(p))
	}
	out, err := p.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return codec.Decode(out)
}

// Merge applies a merge patch to a copy of doc.
func Merge(doc, mergePatch any) (*jsom.Value, error) {
	d, err := json.Marshal(jsom.Wrap(doc))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	p, err := json.Marshal(jsom.Wrap(mergePatch))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("merge patch %s\n", p)
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return codec.Decode(out)
}

// CreateMerge returns the merge patch which turns from into to. Both must
// be mappings.
func CreateMerge(from, to any) (*jsom.Value, error) {
	a, err := json.Marshal(jsom.Wrap(from))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	b, err := json.Marshal(jsom.Wrap(to))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return codec.Decode(out)
}
