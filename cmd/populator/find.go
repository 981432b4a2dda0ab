package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/draftkit/populator"
	"github.com/draftkit/populator/doc"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var kind doc.Kind
	if cfg.Kind != "" {
		if err := kind.UnmarshalText([]byte(cfg.Kind)); err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
	}
	var where populator.Predicate
	if cfg.Where != "" {
		where, err = populator.Where(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
	}
	colors := cfg.colors(cc.Out)
	for _, arg := range args {
		ctx, _, err := loadContext(arg)
		if err != nil {
			return err
		}
		page := ctx.Doc.CurrentPage()
		matches := populator.FindLayers([]*doc.Layer{page}, populator.FindOptions{
			Name:    cfg.Name,
			Exact:   cfg.Exact,
			Kind:    kind,
			Subtree: cfg.Subtree,
		})
		for _, y := range matches {
			if where != nil && !where(y) {
				continue
			}
			fmt.Fprintf(cc.Out, "%s  %s\n", colors.KindFunc(y.Kind)("%s", y.Path()), y.Kind)
		}
	}
	return nil
}
