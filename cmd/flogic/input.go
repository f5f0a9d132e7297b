package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"
)

// inputTexts returns the formula texts to process: the args, or the
// non-blank lines of cc.In when no args are given.
func inputTexts(cc *cli.Context, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	in, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	var res []string
	for _, ln := range strings.Split(string(in), "\n") {
		if strings.TrimSpace(ln) == "" {
			continue
		}
		res = append(res, ln)
	}
	return res, nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
