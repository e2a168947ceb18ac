package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/ConradIrwin/ini-go/syntax"
)

type MainConfig struct {
	Verbose bool `cli:"name=v aliases=verbose desc='log debug output to stderr'"`
	Color   bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// logger returns the logger handed to the ini decoder and encoder.
func (cfg *MainConfig) logger() *slog.Logger {
	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With("component", "ini")
}

// colors returns the palette for w: colored when forced with -color or
// when w is a terminal, plain otherwise.
func (cfg *MainConfig) colors(w io.Writer) *syntax.Colors {
	if cfg.Color {
		color.NoColor = false
		return syntax.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return syntax.NewColors()
	}
	return nil
}

type CheckConfig struct {
	*MainConfig
	Schema string `cli:"name=schema desc='schema file to validate against'"`

	Check *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Diff  bool `cli:"name=d desc='print a diff instead of the formatted document'"`
	Write bool `cli:"name=w desc='write the result back to the file'"`

	Fmt *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type GetConfig struct {
	*MainConfig
	Section string `cli:"name=s aliases=section desc='section to read the key from'"`

	Get *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	From string `cli:"name=from desc='input format: ini, yaml, toml, json or env (default from file extension)'"`
	To   string `cli:"name=to desc='output format: ini, yaml, toml or json' default=ini"`

	Convert *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Raw bool `cli:"name=raw desc='dump the raw syntax tree'"`

	Tree *cli.Command
}
