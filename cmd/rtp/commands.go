package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "rtp").
		WithSynopsis("rtp [opts] command [opts]").
		WithDescription("rtp reads, checks, edits and converts RTP plan files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rtpMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			ViewCommand(cfg),
			EncodeCommand(cfg),
			DcmCommand(cfg),
			DiffCommand(cfg),
			QueryCommand(cfg),
			PatchCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("parse files, verifying checksums, and summarize them in a table").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg, Indent: 2}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("view the record hierarchy of plan files").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("e", "enc").
		WithSynopsis("encode [-V version] [-w file] [file]").
		WithDescription("re-encode a plan file, recomputing checksums").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
}

func DcmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DcmConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dcm, "dcm").
		WithAliases("dicom").
		WithSynopsis("dcm [-f format] [file]").
		WithDescription("convert a plan file to an RT Plan dataset").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dcmCmd(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff a b").
		WithDescription("show record level differences between two plan files").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query -e expr [files]").
		WithDescription(queryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
}

const queryDescription = `select records with an expression.

The expression sees these variables:

  keyword  the record keyword, such as "FIELD_DEF"
  depth    0 for the plan, 1 for its children and so on
  index    position among siblings with the same keyword
  attrs    attribute values by name, such as attrs.field_name

num(s) and integer(s) read numbers from attribute values.  For example

  rtp query -e 'keyword == "FIELD_DEF" && num(attrs.field_dose) > 100' plan.rtp
`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p", "pa").
		WithSynopsis("patch -p patchfile [-k keyword] [-merge] [-w file] [file]").
		WithDescription("apply a JSON patch or merge patch to the attributes of records").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
