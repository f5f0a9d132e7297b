package main

import (
	"fmt"
	"os"

	"github.com/ederic-oytas/flogic/debug"
	"github.com/ederic-oytas/flogic/encode"
	"github.com/ederic-oytas/flogic/parse"
	"github.com/ederic-oytas/flogic/prop"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
)

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.InterpFile != "" {
		if err := loadInterpFile(cfg.Interp, cfg.InterpFile); err != nil {
			return err
		}
	}
	if debug.Eval() {
		debug.LogAny(cfg.Interp)
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
			v, err := u.Interpret(cfg.Interp)
			if err != nil {
				return fmt.Errorf("could not evaluate %q: %w", u, err)
			}
			if err := encode.Encode(u, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
				return err
			}
			if err := writeString(cc.Out, fmt.Sprintf(" = %t\n", v)); err != nil {
				return err
			}
		}
	}
	return nil
}

func loadInterpFile(interp prop.Interp, file string) error {
	d, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	m := map[string]bool{}
	if err := yaml.Unmarshal(d, &m); err != nil {
		return fmt.Errorf("could not parse %q: %w", file, err)
	}
	// -s assignments take precedence over the file
	for k, v := range m {
		if _, ok := interp[k]; !ok {
			interp[k] = v
		}
	}
	return nil
}
