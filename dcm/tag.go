package dcm

import (
	"fmt"
	"strconv"
	"strings"
)

// Tag is a DICOM attribute tag, group in the high 16 bits.
type Tag uint32

func NewTag(group, elem uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(elem))
}

func (t Tag) Group() uint16   { return uint16(t >> 16) }
func (t Tag) Element() uint16 { return uint16(t) }

// String gives the tag as "GGGG,EEEE" in upper case hex.
func (t Tag) String() string {
	return fmt.Sprintf("%04X,%04X", t.Group(), t.Element())
}

// ParseTag parses "GGGG,EEEE" (case insensitive, parentheses allowed).
func ParseTag(s string) (Tag, error) {
	s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	g, e, ok := strings.Cut(s, ",")
	if !ok || len(g) != 4 || len(e) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrTag, s)
	}
	gv, err := strconv.ParseUint(g, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrTag, s)
	}
	ev, err := strconv.ParseUint(e, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrTag, s)
	}
	return NewTag(uint16(gv), uint16(ev)), nil
}

func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Tag) UnmarshalText(d []byte) error {
	pt, err := ParseTag(string(d))
	if err != nil {
		return err
	}
	*t = pt
	return nil
}

// MustTag is ParseTag for constant input.
func MustTag(s string) Tag {
	t, err := ParseTag(s)
	if err != nil {
		panic(err)
	}
	return t
}
