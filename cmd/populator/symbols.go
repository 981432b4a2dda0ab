package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/draftkit/populator"
	"github.com/draftkit/populator/doc"
)

func symbols(cfg *SymbolsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Symbols.Parse(cc, args)
	if err != nil {
		cfg.Symbols.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Name != "" && cfg.Symbol != "" {
		return fmt.Errorf("%w: -name and -symbol are exclusive", cli.ErrUsage)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		ctx, _, err := loadContext(arg)
		if err != nil {
			return err
		}
		if cfg.Name == "" && cfg.Symbol == "" {
			listSymbols(cfg, cc, ctx)
			continue
		}
		var master *doc.Layer
		if cfg.Symbol != "" {
			master = populator.ResolveMasterByID(ctx, cfg.Symbol)
		} else {
			master = populator.ResolveMasterByName(ctx, cfg.Name)
		}
		if master == nil {
			fmt.Fprintln(cc.Out, "no matching symbol master")
			continue
		}
		fmt.Fprintf(cc.Out, "%s  symbol=%s\n", master.Name, master.SymbolID)
	}
	return nil
}

func listSymbols(cfg *SymbolsConfig, cc *cli.Context, ctx *populator.Context) {
	colors := cfg.colors(cc.Out)
	for _, m := range ctx.Doc.SymbolMasters() {
		fmt.Fprintf(cc.Out, "%s  symbol=%s\n",
			colors.KindFunc(doc.KindSymbolMaster)("%s", m.Name), m.SymbolID)
	}
	for _, lib := range ctx.Libraries {
		state := "valid"
		if !lib.Valid {
			state = "unreachable"
		}
		fmt.Fprintf(cc.Out, "library %s (%s)\n", lib.Name, state)
		for _, r := range lib.Refs(nil) {
			fmt.Fprintf(cc.Out, "  %s  symbol=%s\n", r.Name, r.SymbolID)
		}
	}
}
