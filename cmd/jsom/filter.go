package main

import (
	"fmt"

	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"
	"github.com/signadot/jsom/query"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires one argument, an expression", cli.ErrUsage)
	}
	p, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	path := normPath(cfg.Path)
	return eachObjFile(cfg.MainConfig, cc, args[1:], func(_ string, doc *jsom.Value) error {
		target, err := doc.GetPath(path)
		if err != nil {
			return err
		}
		var res *jsom.Value
		if target.IsMapping() {
			res, err = query.SelectEntries(target, p)
		} else {
			res, err = query.Select(target, p)
		}
		if err != nil {
			return err
		}
		if cfg.Count {
			n, err := res.Size()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cc.Out, n)
			return err
		}
		return codec.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
