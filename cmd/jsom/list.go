package main

import (
	"fmt"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path", cli.ErrUsage)
	}
	path := normPath(args[0])
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *jsom.Value) error {
		matches, err := doc.ListPath(path)
		if err != nil {
			return err
		}
		res := jsom.List()
		for _, m := range matches {
			if _, err := res.Add(m); err != nil {
				return err
			}
		}
		return codec.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
