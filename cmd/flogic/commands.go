package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ederic-oytas/flogic/prop"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "flogic").
		WithSynopsis("flogic [opts] command [opts] [formulas]").
		WithDescription("flogic is a tool for working with propositional logic formulas.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmt.Errorf("%w: expected a command", cli.ErrUsage)
		}).
		WithSubs(
			FmtCommand(cfg),
			EvalCommand(cfg),
			TableCommand(cfg))
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-d] [formulas]").
		WithDescription("parse formulas and print them in canonical form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Interp: prop.Interp{}}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "s",
			Description: "set a variable, as name=true|false",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(assignOptTypeFunc(cfg.Interp)), "(name=bool)"),
		})
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-i file] [-s name=bool ...] [formulas]").
		WithDescription("evaluate formulas under a variable assignment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
}

func assignOptTypeFunc(interp prop.Interp) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, val, ok := strings.Cut(a, "=")
		if !ok {
			return nil, fmt.Errorf("%w: -s wants name=true|false, got %q", cli.ErrUsage, a)
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		interp[name] = b
		return 0, nil
	}
}

func TableCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TableConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Table, "table").
		WithAliases("t").
		WithSynopsis("table [-q] [formulas]").
		WithDescription("print the truth table of each formula").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return table(cfg, cc, args)
		})
}
