package main

import (
	"github.com/scott-cotton/cli"

	"github.com/draftkit/populator/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	colors := cfg.colors(cc.Out)
	for _, arg := range args {
		ctx, _, err := loadContext(arg)
		if err != nil {
			return err
		}
		for _, page := range ctx.Doc.Pages() {
			if err := encode.WriteTree(cc.Out, page, colors); err != nil {
				return err
			}
		}
	}
	return nil
}
