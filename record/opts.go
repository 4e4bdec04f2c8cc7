package record

import "log/slog"

type loadOpts struct {
	logger *slog.Logger
	repair bool
}

type LoadOption func(*loadOpts)

// WithLogger sets the logger for non fatal diagnostics such as
// oversized lines.  The default is slog.Default().
func WithLogger(l *slog.Logger) LoadOption {
	return func(o *loadOpts) { o.logger = l }
}

// RepairLine makes Load recover from malformed quoting.
func RepairLine(v bool) LoadOption {
	return func(o *loadOpts) { o.repair = v }
}

func loadOptions(opts []LoadOption) *loadOpts {
	o := &loadOpts{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

type encodeOpts struct {
	version Version
}

type EncodeOption func(*encodeOpts)

// CompatVersion drops attributes introduced after v.
func CompatVersion(v Version) EncodeOption {
	return func(o *encodeOpts) { o.version = v }
}

// VersionFromOpts extracts the compatibility version from encode
// options.
func VersionFromOpts(opts ...EncodeOption) Version {
	return encodeOptions(opts).version
}

func encodeOptions(opts []EncodeOption) *encodeOpts {
	o := &encodeOpts{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
