package main

import (
	"fmt"
	"os"

	"github.com/carlosqueiroz/rtp-connect/patch"
	"github.com/carlosqueiroz/rtp-connect/record"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "" {
		return fmt.Errorf("%w: missing -p patch file", cli.ErrUsage)
	}
	file, err := singleInput(args)
	if err != nil {
		return err
	}
	if cfg.PatchFile == "-" && (file == "" || file == "-") {
		return fmt.Errorf("%w: patch and input cannot both be stdin", cli.ErrUsage)
	}
	var p []byte
	if cfg.PatchFile == "-" {
		p, err = readAll(cc)
	} else {
		p, err = os.ReadFile(cfg.PatchFile)
	}
	if err != nil {
		return fmt.Errorf("could not read patch: %w", err)
	}
	plan, err := readPlan(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	kw := cfg.Keyword
	if kw == "" {
		kw = string(record.KeywordPlan)
	}
	n, err := patch.ApplyTree(plan, kw, p, cfg.Merge)
	if err != nil {
		return err
	}
	cfg.Log.Info("patched", "keyword", kw, "records", n)
	return writePlan(cc, plan, cfg.Output)
}
