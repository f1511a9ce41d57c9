// Package codec decodes JSON and YAML text into jsom trees and encodes
// trees back to text.
//
// Decoding preserves the key order of mappings as it appears in the input.
// Numbers decode to int64, uint64 or float64. A JSON number which fits none
// of these decodes as a json.Number holding its literal text, so it stays a
// number and encodes back unchanged. A key repeated within one mapping keeps
// its first position and its last value.
//
//	v, err := codec.Decode([]byte(`{"a": [1, 2, 3]}`))
//	err = codec.Encode(v, os.Stdout, codec.EncodeIndent(2))
package codec
