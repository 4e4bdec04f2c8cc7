package parse

import (
	"bytes"
	"fmt"

	"github.com/carlosqueiroz/rtp-connect/crc"
	"github.com/carlosqueiroz/rtp-connect/debug"
	"github.com/carlosqueiroz/rtp-connect/record"
	"github.com/carlosqueiroz/rtp-connect/token"
)

// Parse reads a complete RTP document and returns its plan with every
// record attached.  Each line's checksum is verified unless SkipCRC is
// given.
func Parse(d []byte, opts ...ParseOption) (*record.Plan, error) {
	o := options(opts)
	var (
		plan *record.Plan
		last record.Record
	)
	for i, line := range Lines(d) {
		if len(line) == 0 {
			continue
		}
		r, err := parseLine(line, last, o)
		if err != nil {
			return nil, &LineErr{Line: i + 1, Err: err}
		}
		if plan == nil {
			plan = r.(*record.Plan)
		}
		if debug.Parse() {
			debug.Logf("line %d: %s depth %d\n", i+1, r.Keyword(), record.Depth(r))
		}
		last = r
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: %w", ErrNotPlan, ErrEmpty)
	}
	return plan, nil
}

func ParseString(s string, opts ...ParseOption) (*record.Plan, error) {
	return Parse([]byte(s), opts...)
}

func parseLine(line []byte, last record.Record, o *parseOpts) (record.Record, error) {
	if !o.skipCRC {
		if err := crc.Verify(line); err != nil {
			return nil, err
		}
	}
	toks, err := token.Tokenize(line, o.TokenizeOpts()...)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, record.ErrEmptyLine
	}
	// the first record is the plan and only the first
	kw := toks[0].String()
	switch isPlan := record.Canonical(kw) == record.KeywordPlan; {
	case last == nil && !isPlan:
		if _, ok := record.Lookup(kw); !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownKeyword, kw)
		}
		return nil, fmt.Errorf("%w, got %s", ErrNotPlan, record.Canonical(kw))
	case last != nil && isPlan:
		return nil, ErrSecondPlan
	}
	return record.FromTokens(toks, last, o.LoadOpts()...)
}

// Lines splits d at line feeds.  A carriage return before a line feed
// is dropped.  Lines keep their position, so empty lines are returned
// as empty slices.
func Lines(d []byte) [][]byte {
	lines := bytes.Split(d, []byte{'\n'})
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte{'\r'})
	}
	return lines
}
