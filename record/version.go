package record

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a format compatibility version such as 2.4.  The zero
// Version means the latest format known to this package.
type Version float64

const (
	Version24 Version = 2.4
	Version26 Version = 2.6
)

// ParseVersion parses a compatibility version token like "2.4".
func ParseVersion(s string) (Version, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%w: %q", ErrVersion, s)
	}
	return Version(f), nil
}

func (v Version) String() string {
	if v == 0 {
		return "latest"
	}
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}

// supports reports whether an attribute introduced in since may be
// written when targeting v.
func (v Version) supports(since Version) bool {
	return v == 0 || since <= v
}
