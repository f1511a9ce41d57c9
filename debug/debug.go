// Package debug gates diagnostic output on environment variables read
// once at startup.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Clone   bool
	Collect bool
	Codec   bool
	Patch   bool
	Query   bool
	Path    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Clone = boolEnv("JSOM_DEBUG_CLONE")
	d.Collect = boolEnv("JSOM_DEBUG_COLLECT")
	d.Codec = boolEnv("JSOM_DEBUG_CODEC")
	d.Patch = boolEnv("JSOM_DEBUG_PATCH")
	d.Query = boolEnv("JSOM_DEBUG_QUERY")
	d.Path = boolEnv("JSOM_DEBUG_PATH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Clone() bool {
	return d.Clone
}
func Collect() bool {
	return d.Collect
}
func Codec() bool {
	return d.Codec
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func Path() bool {
	return d.Path
}

// Logf writes to stderr, rendering maps, slices and json.Marshalers as
// indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any, json.Number, json.Marshaler:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
