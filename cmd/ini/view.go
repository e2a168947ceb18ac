package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/ConradIrwin/ini-go/syntax"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	colors := cfg.colors(cc.Out)
	files := inputs(args)
	for i, file := range files {
		data, err := readFile(cc, file)
		if err != nil {
			return err
		}
		doc, err := syntax.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s:%w", file, err)
		}
		if err := syntax.Fprint(cc.Out, doc, colors); err != nil {
			return err
		}
		if i < len(files)-1 {
			fmt.Fprintln(cc.Out)
		}
	}
	return nil
}
