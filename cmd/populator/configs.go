package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/draftkit/populator"
	"github.com/draftkit/populator/doc"
	"github.com/draftkit/populator/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

// loadContext reads a document fixture ("-" for stdin) and wraps it with
// its libraries into an engine context.
func loadContext(arg string) (*populator.Context, []*doc.Library, error) {
	var rd io.Reader
	if arg == "-" {
		rd = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		rd = f
	}
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, nil, err
	}
	d, libs, err := encode.Decode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	d.Messenger = func(m string) {
		fmt.Fprintln(os.Stderr, m)
	}
	return &populator.Context{Doc: d, Libraries: libs}, libs, nil
}

func stringOpt(dst *string) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		*dst = v
		return v, nil
	})
}

func intOpt(dst *int) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		*dst = n
		return n, nil
	})
}

func floatOpt(dst **float64) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
		}
		*dst = &f
		return f, nil
	})
}

type FindConfig struct {
	*MainConfig

	Exact   bool `cli:"name=exact desc='match the name exactly'"`
	Subtree bool `cli:"name=subtree desc='search all descendants, not just children'"`

	Name  string
	Kind  string
	Where string

	Find *cli.Command
}

type GridConfig struct {
	*MainConfig

	Rows         int
	Columns      int
	RowMargin    *float64
	ColumnMargin *float64
	Select       string

	Grid *cli.Command
}

type SymbolsConfig struct {
	*MainConfig

	Name   string
	Symbol string

	Symbols *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type BridgeConfig struct {
	*MainConfig

	Bridge *cli.Command
}
