package dcm

import (
	"fmt"
)

// Format selects how a converted dataset is rendered.
type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
	CBORFormat
	TextFormat
)

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"c":    CBORFormat,
		"cbor": CBORFormat,
		"t":    TextFormat,
		"text": TextFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case CBORFormat:
		return []byte("cbor"), nil
	case TextFormat:
		return []byte("text"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// IsBinary reports whether output in f should not go to a terminal.
func (f Format) IsBinary() bool { return f == CBORFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	case CBORFormat:
		return ".cbor"
	case TextFormat:
		return ".txt"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{YAMLFormat, JSONFormat, CBORFormat, TextFormat}
}
