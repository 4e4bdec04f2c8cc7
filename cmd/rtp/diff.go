package main

import (
	"fmt"

	"github.com/carlosqueiroz/rtp-connect/rtpdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff needs exactly 2 files", cli.ErrUsage)
	}
	from, err := readPlan(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := readPlan(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	cs := rtpdiff.Diff(from, to)
	cfg.Log.Info("diff", "records", len(cs), "changed", len(rtpdiff.Changed(cs)))
	return rtpdiff.Write(cc.Out, cs, cfg.colors(cc.Out))
}
