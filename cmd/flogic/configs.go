package main

import (
	"io"
	"os"

	"github.com/ederic-oytas/flogic/encode"
	"github.com/ederic-oytas/flogic/prop"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render formulas with color'"`

	Main *cli.Command
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type FmtConfig struct {
	*MainConfig
	Diff bool `cli:"name=d desc='diff each input against its canonical form'"`

	Fmt *cli.Command
}

type EvalConfig struct {
	*MainConfig
	InterpFile string `cli:"name=i desc='YAML file of variable assignments'"`

	Interp prop.Interp
	Eval   *cli.Command
}

type TableConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='classify only: tautology, contradiction, or contingent'"`

	Table *cli.Command
}
