package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/ConradIrwin/ini-go"
)

var readers = map[string]func([]byte) (*document, error){
	"ini":  readINI,
	"yaml": readYAML,
	"toml": readTOML,
	"json": readJSON,
	"env":  readEnv,
}

// formatOf guesses a format name from a file name.
func formatOf(file string) string {
	if filepath.Base(file) == ".env" {
		return "env"
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	case ".env":
		return "env"
	}
	return "ini"
}

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: convert takes at most one file", cli.ErrUsage)
	}
	file := inputs(args)[0]

	from := cfg.From
	if from == "" {
		from = formatOf(file)
	}
	to := cfg.To
	if to == "" {
		to = "ini"
	}

	data, err := readFile(cc, file)
	if err != nil {
		return err
	}
	return convertData(cc.Out, data, from, to, ini.EncodeLogger(cfg.logger()))
}

func convertData(w io.Writer, data []byte, from, to string, opts ...ini.EncodeOption) error {
	read, ok := readers[from]
	if !ok {
		return fmt.Errorf("%w: unknown input format %q", cli.ErrUsage, from)
	}
	d, err := read(data)
	if err != nil {
		return fmt.Errorf("reading %s: %w", from, err)
	}

	switch to {
	case "ini":
		err = writeINI(w, d, opts...)
	case "yaml":
		err = writeYAML(w, d)
	case "toml":
		err = writeTOML(w, d)
	case "json":
		err = writeJSON(w, d)
	default:
		return fmt.Errorf("%w: unknown output format %q", cli.ErrUsage, to)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", to, err)
	}
	return nil
}
