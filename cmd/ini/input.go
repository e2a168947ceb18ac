package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// inputs returns the files named on the command line, or "-" for stdin.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func readFile(cc *cli.Context, file string) ([]byte, error) {
	if file == "-" {
		data, err := io.ReadAll(cc.In)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return data, nil
}
