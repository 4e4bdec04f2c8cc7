package parse

import (
	"log/slog"

	"github.com/carlosqueiroz/rtp-connect/record"
	"github.com/carlosqueiroz/rtp-connect/token"
)

type parseOpts struct {
	repair  bool
	skipCRC bool
	logger  *slog.Logger
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.Repair(o.repair), token.TokenLogger(o.logger)}
}

func (o *parseOpts) LoadOpts() []record.LoadOption {
	return []record.LoadOption{record.WithLogger(o.logger)}
}

type ParseOption func(*parseOpts)

// Repair recovers from lines with malformed quoting instead of failing.
func Repair() ParseOption {
	return ParseRepair(true)
}
func ParseRepair(v bool) ParseOption {
	return func(o *parseOpts) { o.repair = v }
}

// SkipCRC disables checksum verification.
func SkipCRC() ParseOption {
	return ParseSkipCRC(true)
}
func ParseSkipCRC(v bool) ParseOption {
	return func(o *parseOpts) { o.skipCRC = v }
}

// WithLogger sets the logger for warnings about repaired and oversized
// lines.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) { o.logger = l }
}

func options(opts []ParseOption) *parseOpts {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}
