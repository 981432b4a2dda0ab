package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/draftkit/populator/bridge"
)

func bridgeMain(cfg *BridgeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Bridge.Parse(cc, args)
	if err != nil {
		cfg.Bridge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: bridge requires one document file", cli.ErrUsage)
	}
	ctx, _, err := loadContext(args[0])
	if err != nil {
		return err
	}
	srv := bridge.NewServer(ctx)
	return srv.Serve(context.Background(), &stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
