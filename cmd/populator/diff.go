package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/draftkit/populator/treediff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document files", cli.ErrUsage)
	}
	fromCtx, _, err := loadContext(args[0])
	if err != nil {
		return err
	}
	toCtx, _, err := loadContext(args[1])
	if err != nil {
		return err
	}
	fromPages := fromCtx.Doc.Pages()
	toPages := toCtx.Doc.Pages()
	n := len(fromPages)
	if len(toPages) < n {
		n = len(toPages)
	}
	useColor := cfg.Color
	for i := 0; i < n; i++ {
		for _, c := range treediff.Trees(fromPages[i], toPages[i]) {
			line := fmt.Sprintf("%s %s  %s", c.Op, c.Path, c.Kind)
			if useColor {
				switch c.Op {
				case treediff.Insert:
					line = color.GreenString("%s", line)
				case treediff.Delete:
					line = color.RedString("%s", line)
				}
			}
			fmt.Fprintln(cc.Out, line)
		}
	}
	return nil
}
