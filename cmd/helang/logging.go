package main

import (
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"gopkg.in/urfave/cli.v1"
)

// setup resolves the effective configuration and installs the root log
// handler. Every command calls it first.
func setup(ctx *cli.Context) (*helangConfig, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Log, ctx.App.ErrWriter)
	return cfg, nil
}

func setupLogging(cfg logConfig, w io.Writer) {
	useColor := cfg.Color && isTerminal(w)
	if f, ok := w.(*os.File); ok && useColor {
		w = colorable.NewColorable(f)
	}
	color.NoColor = !useColor
	log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(cfg.Verbosity), log.StreamHandler(w, log.TerminalFormat(useColor))))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
