package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/debug"
	"github.com/signadot/jsom/format"

	"github.com/goccy/go-yaml"
)

type encodeOpts struct {
	format format.Format
	indent int
	colors *Colors
}

type EncodeOption func(*encodeOpts)

func EncodeFormat(f format.Format) EncodeOption { return func(o *encodeOpts) { o.format = f } }

// EncodeIndent sets the indentation per level. 0 gives compact JSON; YAML
// always indents, by 2 when n is 0.
func EncodeIndent(n int) EncodeOption { return func(o *encodeOpts) { o.indent = n } }

// EncodeColors colors JSON output. It has no effect on YAML.
func EncodeColors(c *Colors) EncodeOption { return func(o *encodeOpts) { o.colors = c } }

// Encode writes v followed by a newline.
func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(v, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func Marshal(v any, opts ...EncodeOption) ([]byte, error) {
	eo := &encodeOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(eo)
	}
	node := jsom.Unwrap(v)
	if debug.Codec() {
		debug.Logf("encode %s as %s\n", jsom.TypeOf(node), eo.format)
	}
	if eo.format.IsYAML() {
		indent := eo.indent
		if indent <= 0 {
			indent = 2
		}
		y, err := toYAML(node)
		if err != nil {
			return nil, err
		}
		d, err := yaml.MarshalWithOptions(y, yaml.Indent(indent))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return d, nil
	}
	e := &jsonEncoder{indent: eo.indent, colors: eo.colors}
	if err := e.encode(node, 0); err != nil {
		return nil, err
	}
	e.buf.WriteByte('\n')
	return e.buf.Bytes(), nil
}

type jsonEncoder struct {
	buf    bytes.Buffer
	indent int
	colors *Colors
}

func (e *jsonEncoder) write(k jsom.Kind, attr ColorAttr, s string) {
	if e.colors == nil {
		e.buf.WriteString(s)
		return
	}
	e.buf.WriteString(e.colors.Color(k, attr)("%s", s))
}

func (e *jsonEncoder) newline(depth int) {
	if e.indent <= 0 {
		return
	}
	e.buf.WriteByte('\n')
	e.buf.WriteString(strings.Repeat(" ", depth*e.indent))
}

func (e *jsonEncoder) encode(node any, depth int) error {
	kind := jsom.KindOf(node)
	switch kind {
	case jsom.MappingKind:
		m := node.(*jsom.Mapping)
		if m.Len() == 0 {
			e.write(kind, SepColor, "{}")
			return nil
		}
		e.write(kind, SepColor, "{")
		for pair := m.Oldest(); pair != nil; pair = pair.Next() {
			if pair != m.Oldest() {
				e.write(kind, SepColor, ",")
			}
			e.newline(depth + 1)
			kd, err := json.Marshal(pair.Key)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrEncode, err)
			}
			e.write(kind, FieldColor, string(kd))
			e.write(kind, SepColor, ":")
			if e.indent > 0 {
				e.buf.WriteByte(' ')
			}
			if err := e.encode(pair.Value, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.write(kind, SepColor, "}")
		return nil
	case jsom.SequenceKind:
		s := node.(*jsom.Sequence)
		if s.Len() == 0 {
			e.write(kind, SepColor, "[]")
			return nil
		}
		e.write(kind, SepColor, "[")
		for i, x := range s.All() {
			if i > 0 {
				e.write(kind, SepColor, ",")
			}
			e.newline(depth + 1)
			if err := e.encode(x, depth+1); err != nil {
				return err
			}
		}
		e.newline(depth)
		e.write(kind, SepColor, "]")
		return nil
	case jsom.UnknownKind:
		return fmt.Errorf("%w: cannot encode %T", ErrEncode, node)
	default:
		d, err := json.Marshal(node)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		e.write(kind, ValueColor, string(d))
		return nil
	}
}

func toYAML(node any) (any, error) {
	switch x := node.(type) {
	case *jsom.Mapping:
		res := make(yaml.MapSlice, 0, x.Len())
		for pair := x.Oldest(); pair != nil; pair = pair.Next() {
			v, err := toYAML(pair.Value)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: pair.Key, Value: v})
		}
		return res, nil
	case *jsom.Sequence:
		res := make([]any, 0, x.Len())
		for y := range x.Values() {
			v, err := toYAML(y)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case json.Number:
		if i, err := strconv.ParseInt(string(x), 10, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(string(x), 10, 64); err == nil {
			return u, nil
		}
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: bad number %q", ErrEncode, x)
		}
		return f, nil
	}
	if jsom.KindOf(node) == jsom.UnknownKind {
		return nil, fmt.Errorf("%w: cannot encode %T", ErrEncode, node)
	}
	return node, nil
}
