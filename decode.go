package jsom

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode decodes the tree under v into out, which must be a pointer.
// Struct fields are matched by their json tag.
func (v *Value) Decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(ToNative(v.node)); err != nil {
		return fmt.Errorf("%w: %w", ErrTypeMismatch, err)
	}
	return nil
}
