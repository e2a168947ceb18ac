package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/ConradIrwin/ini-go/syntax"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}

	for _, file := range inputs(args) {
		data, err := readFile(cc, file)
		if err != nil {
			return err
		}
		doc, err := syntax.Parse(string(data))
		if err != nil {
			return fmt.Errorf("%s:%w", file, err)
		}
		out := syntax.Sprint(doc)

		switch {
		case cfg.Diff:
			if d := lineDiff(string(data), out); d != "" {
				fmt.Fprintf(cc.Out, "--- %s\n+++ %s (formatted)\n%s", file, file, d)
			}
		case cfg.Write:
			if out != string(data) {
				if err := os.WriteFile(file, []byte(out), 0644); err != nil {
					return err
				}
			}
		default:
			if _, err := io.WriteString(cc.Out, out); err != nil {
				return err
			}
		}
	}
	return nil
}

// lineDiff returns a line-by-line diff from a to b, with each line
// prefixed by "-", "+" or " ". It returns "" when a and b are equal.
func lineDiff(a, b string) string {
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out strings.Builder
	changed := false
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+"
			changed = true
		case diffmatchpatch.DiffDelete:
			prefix = "-"
			changed = true
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix + line)
			if !strings.HasSuffix(line, "\n") {
				out.WriteString("\n")
			}
		}
	}
	if !changed {
		return ""
	}
	return out.String()
}
