package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ederic-oytas/flogic/encode"
	"github.com/ederic-oytas/flogic/parse"
	"github.com/ederic-oytas/flogic/prop"

	"github.com/scott-cotton/cli"
)

// caps table output at 2^16 rows
const maxTableVars = 16

func table(cfg *TableConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Table.Parse(cc, args)
	if err != nil {
		return err
	}
	texts, err := inputTexts(cc, args)
	if err != nil {
		return err
	}
	for _, text := range texts {
		props, err := parse.ParseList([]byte(text))
		if err != nil {
			return fmt.Errorf("could not parse %q: %w", text, err)
		}
		for _, u := range props {
			if err := tableOne(cfg, cc.Out, u); err != nil {
				return err
			}
		}
	}
	return nil
}

func tableOne(cfg *TableConfig, w io.Writer, u *prop.Prop) error {
	vars := u.Vars()
	if len(vars) > maxTableVars {
		return fmt.Errorf("%q has %d variables, more than the %d a table supports",
			u, len(vars), maxTableVars)
	}
	if !cfg.Quiet {
		if err := writeString(w, strings.Join(vars, " ")+" | "); err != nil {
			return err
		}
		if err := encode.Encode(u, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	interp := make(prop.Interp, len(vars))
	rows := 1 << len(vars)
	allTrue, allFalse := true, true
	for row := 0; row < rows; row++ {
		for j, name := range vars {
			interp[name] = (row>>(len(vars)-1-j))&1 == 1
		}
		v, err := u.Interpret(interp)
		if err != nil {
			return fmt.Errorf("could not evaluate %q: %w", u, err)
		}
		if v {
			allFalse = false
		} else {
			allTrue = false
		}
		if cfg.Quiet {
			continue
		}
		cells := make([]string, len(vars))
		for j, name := range vars {
			cells[j] = fmt.Sprintf("%-*s", len(name), letter(interp[name]))
		}
		if err := writeString(w, strings.Join(cells, " ")+" | "+letter(v)+"\n"); err != nil {
			return err
		}
	}
	if cfg.Quiet {
		verdict := "contingent"
		switch {
		case allTrue:
			verdict = "tautology"
		case allFalse:
			verdict = "contradiction"
		}
		return writeString(w, fmt.Sprintf("%s: %s\n", u, verdict))
	}
	return nil
}

func letter(v bool) string {
	if v {
		return "T"
	}
	return "F"
}
