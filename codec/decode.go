package codec

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/debug"
	"github.com/signadot/jsom/format"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
	"github.com/goccy/go-yaml/token"
)

type decodeOpts struct {
	format format.Format
}

type DecodeOption func(*decodeOpts)

// DecodeFormat sets the input format, JSON by default. YAML input also
// accepts JSON.
func DecodeFormat(f format.Format) DecodeOption { return func(o *decodeOpts) { o.format = f } }

func Decode(d []byte, opts ...DecodeOption) (*jsom.Value, error) {
	do := &decodeOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(do)
	}
	if do.format.IsJSON() && !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid json", ErrDecode)
	}
	var (
		node any
		err  error
	)
	if do.format.IsJSON() {
		node, err = decodeJSON(d)
	} else {
		node, err = decodeYAML(d)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if debug.Codec() {
		debug.Logf("decoded %s document of %d bytes\n", do.format, len(d))
	}
	return jsom.Wrap(node), nil
}

func decodeYAML(d []byte) (any, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(d, &raw, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey()); err != nil {
		return nil, err
	}
	return adopt(raw), nil
}

// decodeJSON walks the syntax tree rather than decoding into Go values so
// that numbers beyond int64, uint64 or float64 range stay numbers.
func decodeJSON(d []byte) (any, error) {
	f, err := parser.ParseBytes(d, 0, parser.AllowDuplicateMapKey())
	if err != nil {
		return nil, err
	}
	if len(f.Docs) != 1 {
		return nil, fmt.Errorf("expected 1 document, got %d", len(f.Docs))
	}
	return fromAST(f.Docs[0].Body)
}

func fromAST(n ast.Node) (any, error) {
	switch x := n.(type) {
	case nil, *ast.NullNode:
		return nil, nil
	case *ast.BoolNode:
		return x.Value, nil
	case *ast.IntegerNode:
		if x.Value == nil {
			return json.Number(x.Token.Value), nil
		}
		return x.Value, nil
	case *ast.FloatNode:
		if f, err := strconv.ParseFloat(x.Token.Value, 64); err == nil {
			return f, nil
		}
		return json.Number(x.Token.Value), nil
	case *ast.StringNode:
		if x.Token.Type != token.DoubleQuoteType {
			// only numbers are unquoted in valid json
			return json.Number(x.Value), nil
		}
		return x.Value, nil
	case *ast.SequenceNode:
		s := jsom.MakeSequence()
		for _, e := range x.Values {
			v, err := fromAST(e)
			if err != nil {
				return nil, err
			}
			s.Append(v)
		}
		return s, nil
	case *ast.MappingNode:
		m := jsom.MakeMapping()
		for _, mv := range x.Values {
			if err := setFromAST(m, mv); err != nil {
				return nil, err
			}
		}
		return m, nil
	case *ast.MappingValueNode:
		m := jsom.MakeMapping()
		if err := setFromAST(m, x); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unexpected %s at %s", n.Type(), n.GetToken().Position)
	}
}

// setFromAST sets one entry of m. A repeated key keeps its first position
// and takes the last value.
func setFromAST(m *jsom.Mapping, mv *ast.MappingValueNode) error {
	var key string
	switch k := mv.Key.(type) {
	case *ast.StringNode:
		key = k.Value
	case ast.ScalarNode:
		key = fmt.Sprint(k.GetValue())
	default:
		return fmt.Errorf("unexpected key %s", mv.Key)
	}
	v, err := fromAST(mv.Value)
	if err != nil {
		return err
	}
	m.Set(key, v)
	return nil
}

func DecodeReader(r io.Reader, opts ...DecodeOption) (*jsom.Value, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Decode(d, opts...)
}

func adopt(raw any) any {
	switch x := raw.(type) {
	case yaml.MapSlice:
		m := jsom.MakeMapping()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			m.Set(key, adopt(item.Value))
		}
		return m
	case []any:
		s := jsom.MakeSequence()
		for _, e := range x {
			s.Append(adopt(e))
		}
		return s
	case map[string]any, map[any]any:
		return jsom.FromNative(x).Raw()
	default:
		return raw
	}
}
