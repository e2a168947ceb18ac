package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/scott-cotton/cli"

	"github.com/ConradIrwin/ini-go/syntax"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
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
		if cfg.Raw {
			dumper.Fdump(cc.Out, doc)
			continue
		}
		writeTree(cc.Out, doc)
	}
	return nil
}

// writeTree prints one line per node, indented by depth, with positions.
func writeTree(w io.Writer, doc *syntax.Document) {
	line := func(depth int, pos syntax.Pos, format string, args ...any) {
		fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), pos, fmt.Sprintf(format, args...))
	}
	pair := func(depth int, kv *syntax.KeyValuePair) {
		line(depth, kv.Pos(), "KeyValuePair %q = %q", kv.Key.Text, kv.Value.Text)
	}

	fmt.Fprintln(w, "Document")
	for _, n := range doc.Children {
		switch n := n.(type) {
		case *syntax.KeyValuePair:
			pair(1, n)
		case *syntax.Section:
			line(1, n.Pos(), "Section %q", n.Name())
			for _, word := range n.Header() {
				line(2, word.Pos(), "Word %q", word.Text)
			}
			for _, p := range n.Pairs() {
				pair(2, p.(*syntax.KeyValuePair))
			}
		}
	}
	for _, c := range doc.Comments {
		line(1, c.Pos(), "Comment %q", c.Text)
	}
}
