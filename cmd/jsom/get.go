package main

import (
	"fmt"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := normPath(args[0])
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *jsom.Value) error {
		res, err := doc.GetPath(path)
		if err != nil {
			return err
		}
		return codec.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}

func normPath(p string) string {
	if p == "" || p[0] != '$' {
		if p != "" && p[0] != '.' && p[0] != '[' {
			p = "." + p
		}
		p = "$" + p
	}
	return p
}
