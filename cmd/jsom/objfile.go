package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...codec.DecodeOption) (*jsom.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return codec.Decode(d, opts...)
}

// eachObjFile calls f on every file in files, or on stdin if there are
// none.
func eachObjFile(cfg *MainConfig, cc *cli.Context, files []string, f func(string, *jsom.Value) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cc, file, cfg.decOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}
