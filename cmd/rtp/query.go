package main

import (
	"fmt"

	rtpquery "github.com/carlosqueiroz/rtp-connect/query"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: missing -e expression", cli.ErrUsage)
	}
	q, err := rtpquery.Compile(cfg.Expr)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		plan, err := readPlan(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		rs, err := rtpquery.Select(plan, q)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		for _, r := range rs {
			line, err := r.Encode()
			if err != nil {
				return err
			}
			if len(args) > 1 {
				fmt.Fprintf(cc.Out, "%s:", file)
			}
			if _, err := cc.Out.Write(line); err != nil {
				return err
			}
		}
	}
	return nil
}
