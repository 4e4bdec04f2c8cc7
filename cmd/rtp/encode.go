package main

import (
	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := singleInput(args)
	if err != nil {
		return err
	}
	encOpts, err := cfg.version()
	if err != nil {
		return err
	}
	plan, err := readPlan(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	return writePlan(cc, plan, cfg.Output, encOpts...)
}
