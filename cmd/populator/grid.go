package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/draftkit/populator"
	"github.com/draftkit/populator/doc"
	"github.com/draftkit/populator/encode"
)

func grid(cfg *GridConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Grid.Parse(cc, args)
	if err != nil {
		cfg.Grid.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	arg := "-"
	if len(args) > 0 {
		arg = args[0]
	}
	ctx, libs, err := loadContext(arg)
	if err != nil {
		return err
	}
	if cfg.Select != "" {
		page := ctx.Doc.CurrentPage()
		matches := populator.FindLayers([]*doc.Layer{page}, populator.FindOptions{
			Name:    cfg.Select,
			Subtree: true,
		})
		populator.SetSelection(ctx, matches)
	}
	selected := populator.GetSelection(ctx)
	if len(selected) == 0 {
		return fmt.Errorf("%w: nothing selected; mark layers selected in the fixture or pass -select", cli.ErrUsage)
	}
	res := populator.CreateGrid(ctx, selected, populator.GridSpec{
		Rows:         cfg.Rows,
		Columns:      cfg.Columns,
		RowMargin:    cfg.RowMargin,
		ColumnMargin: cfg.ColumnMargin,
	})
	if res == nil {
		return cli.ExitCodeErr(1)
	}
	populator.SetSelection(ctx, res)
	out, err := encode.Encode(ctx.Doc, libs)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}
