package main

import (
	"github.com/signadot/jsom"
	"github.com/signadot/jsom/codec"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachObjFile(cfg.MainConfig, cc, args, func(_ string, doc *jsom.Value) error {
		return codec.Encode(doc, cc.Out, cfg.encOpts(cc.Out)...)
	})
}
