package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/ederic-oytas/flogic/encode"
	"github.com/ederic-oytas/flogic/parse"
	"github.com/ederic-oytas/flogic/prop"

	"github.com/scott-cotton/cli"

	"github.com/sergi/go-diff/diffmatchpatch"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	texts, err := inputTexts(cc, args)
	if err != nil {
		return err
	}
	for _, text := range texts {
		if err := formatOne(cfg, cc.Out, text); err != nil {
			return err
		}
	}
	return nil
}

func formatOne(cfg *FmtConfig, w io.Writer, text string) error {
	props, err := parse.ParseList([]byte(text))
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", text, err)
	}
	if cfg.Diff {
		return diffCanonical(w, text, props)
	}
	for _, u := range props {
		if err := encode.Encode(u, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		if err := writeString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func diffCanonical(w io.Writer, text string, props []*prop.Prop) error {
	canon := make([]string, len(props))
	for i, u := range props {
		canon[i] = u.String()
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(text, strings.Join(canon, ", "), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return writeString(w, dmp.DiffPrettyText(diffs)+"\n")
}
