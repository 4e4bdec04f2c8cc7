package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	rtp "github.com/carlosqueiroz/rtp-connect"
	"github.com/carlosqueiroz/rtp-connect/parse"
	"github.com/carlosqueiroz/rtp-connect/record"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func rtpMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if err := cfg.setup(os.Stderr); err != nil {
		return err
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			cfg.Log.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// readPlan reads file, or the standard input when file is "" or "-".
func readPlan(cfg *MainConfig, cc *cli.Context, file string) (*record.Plan, error) {
	if file != "" && file != "-" {
		return rtp.Read(file, cfg.parseOpts()...)
	}
	d, err := readAll(cc)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, cfg.parseOpts()...)
}

func readAll(cc *cli.Context) ([]byte, error) {
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return d, nil
}

// singleInput checks that args name at most one input.
func singleInput(args []string) (string, error) {
	switch len(args) {
	case 0:
		return "", nil
	case 1:
		return args[0], nil
	}
	return "", fmt.Errorf("%w: expected at most one input file, got %d", cli.ErrUsage, len(args))
}

// writePlan writes plan to output atomically, or to cc.Out when output
// is empty.
func writePlan(cc *cli.Context, plan *record.Plan, output string, opts ...record.EncodeOption) error {
	if output != "" {
		return rtp.Write(output, plan, opts...)
	}
	d, err := rtp.Encode(plan, opts...)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
