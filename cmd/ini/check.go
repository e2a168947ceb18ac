package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hengadev/errsx"
	"github.com/scott-cotton/cli"

	"github.com/ConradIrwin/ini-go/schema"
	"github.com/ConradIrwin/ini-go/syntax"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}

	var s *schema.Schema
	if cfg.Schema != "" {
		data, err := os.ReadFile(cfg.Schema)
		if err != nil {
			return fmt.Errorf("error reading schema file: %w", err)
		}
		s, err = schema.Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", cfg.Schema, err)
		}
	}

	var errs errsx.Map
	for _, file := range inputs(args) {
		data, err := readFile(cc, file)
		if err != nil {
			errs.Set(file, err)
			continue
		}
		problems := checkDocument(s, data)
		for _, p := range problems {
			fmt.Fprintf(cc.Out, "%s:%s\n", file, p.Error())
		}
		if len(problems) > 0 {
			errs.Set(file, fmt.Errorf("%d problems", len(problems)))
		}
	}
	return errs.AsError()
}

// checkDocument validates data against s, or only checks its syntax when s
// is nil.
func checkDocument(s *schema.Schema, data []byte) []schema.ValidationError {
	if s != nil {
		return s.Validate(data)
	}
	_, err := syntax.Parse(string(data))
	var se *syntax.Error
	if errors.As(err, &se) {
		return []schema.ValidationError{{Pos: se.Pos, Msg: se.Msg}}
	}
	return nil
}
