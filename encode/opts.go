package encode

import "github.com/carlosqueiroz/rtp-connect/record"

// CompatVersion is record.CompatVersion, for callers that only import
// this package.
func CompatVersion(v record.Version) record.EncodeOption {
	return record.CompatVersion(v)
}

// ParseVersion parses a compatibility version token such as "2.4".
// The empty string means the latest version.
func ParseVersion(s string) (record.Version, error) {
	if s == "" {
		return 0, nil
	}
	return record.ParseVersion(s)
}

type treeState struct {
	verbose bool
	indent  int
	Color   func(ColorAttr, string) string
}

type TreeOption func(*treeState)

// TreeVerbose lists every non-empty attribute instead of a summary.
func TreeVerbose(v bool) TreeOption {
	return func(ts *treeState) { ts.verbose = v }
}
func TreeIndent(n int) TreeOption {
	return func(ts *treeState) { ts.indent = n }
}
func TreeColors(c *Colors) TreeOption {
	return func(ts *treeState) { ts.Color = c.Color }
}
