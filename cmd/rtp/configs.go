package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/carlosqueiroz/rtp-connect/dcm"
	"github.com/carlosqueiroz/rtp-connect/encode"
	"github.com/carlosqueiroz/rtp-connect/parse"
	"github.com/carlosqueiroz/rtp-connect/record"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config  string `cli:"name=config desc='configuration file (default ~/.config/rtp/config.toml)'"`
	Repair  bool   `cli:"name=repair desc='repair lines with unescaped quotes'"`
	SkipCRC bool   `cli:"name=skip-crc desc='do not verify line checksums'"`
	Verbose bool   `cli:"name=v desc='log informational messages'"`
	Gops    bool   `cli:"name=gops desc='run a gops diagnostics agent'"`
	Color   bool   `cli:"name=color desc='color output'"`

	File *FileConfig
	Log  *slog.Logger

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// isSet reports whether the named option was given on the command
// line.
func isSet(cmd *cli.Command, name string) bool {
	for _, opt := range cmd.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

// setup loads the configuration file and the logger.  It runs after
// the main options are parsed.
func (cfg *MainConfig) setup(errOut io.Writer) error {
	fc, err := loadFileConfig(cfg.Config)
	if err != nil {
		return err
	}
	cfg.File = fc
	if !isSet(cfg.Main, "repair") {
		cfg.Repair = fc.Parse.Repair
	}
	if !isSet(cfg.Main, "skip-crc") {
		cfg.SkipCRC = fc.Parse.SkipCRC
	}
	level, err := parseLevel(fc.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: log level: %w", cli.ErrUsage, err)
	}
	if cfg.Verbose {
		level = slog.LevelInfo
	}
	cfg.Log = newLogger(errOut, level)
	return nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseRepair(cfg.Repair),
		parse.ParseSkipCRC(cfg.SkipCRC),
		parse.WithLogger(cfg.Log),
	}
}

// colors returns output colors if asked for, or if w is a terminal
// and color was not turned off.
func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if cfg.Color {
		return encode.NewColors()
	}
	if isSet(cfg.Main, "color") {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return encode.NewColors()
	}
	return nil
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

type CheckConfig struct {
	*MainConfig
	Check *cli.Command
}

type ViewConfig struct {
	*MainConfig
	All    bool `cli:"name=a aliases=all desc='show every non-empty attribute'"`
	Indent int  `cli:"name=indent desc='indentation width'"`

	View *cli.Command
}

type EncodeConfig struct {
	*MainConfig
	Version string `cli:"name=V desc='target format version, such as 2.4'"`
	Output  string `cli:"name=w desc='write the result atomically to this file'"`

	Encode *cli.Command
}

// version returns the target version from -V or the configuration
// file.
func (cfg *EncodeConfig) version() ([]record.EncodeOption, error) {
	s := cfg.Version
	if s == "" {
		s = cfg.File.Encode.Version
	}
	v, err := encode.ParseVersion(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return []record.EncodeOption{record.CompatVersion(v)}, nil
}

type DcmConfig struct {
	*MainConfig
	Format       string `cli:"name=f aliases=format desc='output format: yaml/y, json/j, cbor/c, text/t'"`
	Manufacturer string `cli:"name=manufacturer desc='beam manufacturer'"`
	Model        string `cli:"name=model desc='beam model name'"`
	SerialNumber string `cli:"name=serial desc='beam device serial number'"`

	Dcm *cli.Command
}

func (cfg *DcmConfig) options() dcm.Options {
	fc := cfg.File.Convert
	opts := dcm.Options{
		Manufacturer: fc.Manufacturer,
		Model:        fc.Model,
		SerialNumber: fc.SerialNumber,
		Logger:       cfg.Log,
	}
	if cfg.Manufacturer != "" {
		opts.Manufacturer = cfg.Manufacturer
	}
	if cfg.Model != "" {
		opts.Model = cfg.Model
	}
	if cfg.SerialNumber != "" {
		opts.SerialNumber = cfg.SerialNumber
	}
	return opts
}

func (cfg *DcmConfig) format() (dcm.Format, error) {
	s := cfg.Format
	if s == "" {
		s = cfg.File.Convert.Format
	}
	if s == "" {
		return dcm.YAMLFormat, nil
	}
	f, err := dcm.ParseFormat(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return f, nil
}

type DiffConfig struct {
	*MainConfig
	Diff *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Expr string `cli:"name=e desc='selection expression'"`

	Query *cli.Command
}

type PatchConfig struct {
	*MainConfig
	PatchFile string `cli:"name=p desc='patch file'"`
	Keyword   string `cli:"name=k desc='patch every record with this keyword (default the plan)'"`
	Merge     bool   `cli:"name=merge desc='the patch is a JSON merge patch'"`
	Output    string `cli:"name=w desc='write the result atomically to this file'"`

	Patch *cli.Command
}
