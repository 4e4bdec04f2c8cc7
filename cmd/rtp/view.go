package main

import (
	"fmt"
	"io"

	"github.com/carlosqueiroz/rtp-connect/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", cli.ErrUsage, cfg.Indent)
	}
	if len(args) == 0 {
		return viewFile(cfg, cc, cc.Out, "-")
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string) error {
	plan, err := readPlan(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	opts := []encode.TreeOption{
		encode.TreeVerbose(cfg.All),
		encode.TreeIndent(cfg.Indent),
	}
	if c := cfg.colors(w); c != nil {
		opts = append(opts, encode.TreeColors(c))
	}
	if err := encode.Tree(plan, w, opts...); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}
