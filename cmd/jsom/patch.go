package main

import (
	"fmt"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"
	"github.com/signadot/jsom/patch"

	"github.com/scott-cotton/cli"
)

func applyPatch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := getObjFile(cc, args[0], cfg.decOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *jsom.Value) error {
		var res *jsom.Value
		if cfg.Merge {
			res, err = patch.Merge(doc, p)
		} else {
			res, err = patch.Apply(doc, p)
		}
		if err != nil {
			return err
		}
		return codec.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
