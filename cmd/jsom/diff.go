package main

import (
	"fmt"

	"github.com/signadot/jsom/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.decOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.decOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	lines, err := libdiff.Diff(a, b)
	if err != nil {
		return err
	}
	if lines == nil {
		return nil
	}
	if _, err := fmt.Fprint(cc.Out, libdiff.Format(lines, cfg.useColor(cc.Out))); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
