package token

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// RTP files are ISO-8859-1.  Fields are kept as raw bytes until they
// are turned into Go strings, so every byte survives a read/write cycle.

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// Decode converts ISO-8859-1 bytes to a string.
func Decode(b []byte) string {
	if isASCII(b) {
		return string(b)
	}
	d, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// every byte maps to a rune in ISO-8859-1
		panic(err)
	}
	return string(d)
}

// Encode converts s to ISO-8859-1 bytes.
func Encode(s string) ([]byte, error) {
	if isASCII([]byte(s)) {
		return []byte(s), nil
	}
	d, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrCharset, s)
	}
	return d, nil
}
