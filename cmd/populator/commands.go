package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "populator").
		WithSynopsis("populator [opts] command [opts]").
		WithDescription("populator works with design document fixtures: queries layers, resolves symbols and expands grids.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return populatorMain(cfg, cc, args)
		}).
		WithSubs(
			FindCommand(cfg),
			GridCommand(cfg),
			SymbolsCommand(cfg),
			ViewCommand(cfg),
			DiffCommand(cfg),
			BridgeCommand(cfg))
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "name",
			Description: "name to match (substring unless -exact)",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.Name), "(name)"),
		},
		&cli.Opt{
			Name:        "kind",
			Description: "layer kind filter, e.g. Text, Shape, Group",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.Kind), "(kind)"),
		},
		&cli.Opt{
			Name:        "where",
			Description: "boolean expression over id,name,kind,text,x,y,width,height",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.Where), "(expr)"),
		})
	cmd := cli.NewCommand("find").
		WithAliases("f").
		WithSynopsis("find [-name n] [-exact] [-kind k] [-subtree] [-where e] [files]").
		WithDescription("find layers of the current page by name, kind and expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
	cfg.Find = cmd
	return cmd
}

func GridCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GridConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "rows",
			Description: "grid rows count",
			Type:        cli.NamedFuncOpt(intOpt(&cfg.Rows), "(n)"),
		},
		&cli.Opt{
			Name:        "cols",
			Aliases:     []string{"columns"},
			Description: "grid columns count",
			Type:        cli.NamedFuncOpt(intOpt(&cfg.Columns), "(n)"),
		},
		&cli.Opt{
			Name:        "row-margin",
			Description: "vertical margin between cells",
			Type:        cli.NamedFuncOpt(floatOpt(&cfg.RowMargin), "(px)"),
		},
		&cli.Opt{
			Name:        "col-margin",
			Description: "horizontal margin between cells",
			Type:        cli.NamedFuncOpt(floatOpt(&cfg.ColumnMargin), "(px)"),
		},
		&cli.Opt{
			Name:        "select",
			Description: "select layers of the current page by name before expanding",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.Select), "(name)"),
		})
	cmd := cli.NewCommand("grid").
		WithAliases("g").
		WithSynopsis("grid -rows n -cols m -row-margin p -col-margin q [-select name] [file]").
		WithDescription("replace the selection with a grid of copies of its anchor layer").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return grid(cfg, cc, args)
		})
	cfg.Grid = cmd
	return cmd
}

func SymbolsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SymbolsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "name",
			Description: "resolve a master by name",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.Name), "(name)"),
		},
		&cli.Opt{
			Name:        "symbol",
			Aliases:     []string{"id"},
			Description: "resolve a master by symbol identifier",
			Type:        cli.NamedFuncOpt(stringOpt(&cfg.Symbol), "(id)"),
		})
	cmd := cli.NewCommand("symbols").
		WithAliases("sym", "s").
		WithSynopsis("symbols [-name n | -symbol id] [files]").
		WithDescription("list document and library symbol masters, or resolve one").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return symbols(cfg, cc, args)
		})
	cfg.Symbols = cmd
	return cmd
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view document layer trees with kinds in color").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff <file> <file>").
		WithDescription("diff the layer trees of two document fixtures by name").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func BridgeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &BridgeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("bridge").
		WithSynopsis("bridge <file>").
		WithDescription("serve the engine over JSON-RPC on stdin/stdout").
		WithRun(func(cc *cli.Context, args []string) error {
			return bridgeMain(cfg, cc, args)
		})
	cfg.Bridge = cmd
	return cmd
}
