package main

import (
	"github.com/carlosqueiroz/rtp-connect/dcm"

	"github.com/scott-cotton/cli"
)

func dcmCmd(cfg *DcmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dcm.Parse(cc, args)
	if err != nil {
		return err
	}
	file, err := singleInput(args)
	if err != nil {
		return err
	}
	f, err := cfg.format()
	if err != nil {
		return err
	}
	plan, err := readPlan(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	ds, err := dcm.Convert(plan, cfg.options())
	if err != nil {
		return err
	}
	d, err := dcm.Marshal(ds, f)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
