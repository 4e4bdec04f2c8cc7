package record

import (
	"fmt"

	"github.com/carlosqueiroz/rtp-connect/crc"
	"github.com/carlosqueiroz/rtp-connect/debug"
	"github.com/carlosqueiroz/rtp-connect/token"
)

// Encode returns the record's line: every value quoted, a trailing
// comma, the checksum field and CRLF.  With CompatVersion, attributes
// newer than the target version are left out.
func (b *base) Encode(opts ...EncodeOption) ([]byte, error) {
	o := encodeOptions(opts)
	vals := b.Values()
	vals = vals[:b.schema.supported(o.version)]
	line, err := AppendLine(nil, vals)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", b.schema.Keyword, err)
	}
	if debug.Encode() {
		debug.Logf("encode %s (version %s): %s\n", b.schema.Keyword, o.version, line)
	}
	return line, nil
}

// Text returns the lines of the record and all of its descendants in
// document order.
func (b *base) Text(opts ...EncodeOption) ([]byte, error) {
	var res []byte
	var err error
	Walk(b.self, func(r Record, _ int) bool {
		if err != nil {
			return false
		}
		var line []byte
		line, err = r.Encode(opts...)
		if err != nil {
			return false
		}
		res = append(res, line...)
		return true
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// AppendLine appends vals to dst as a complete RTP line.  Values are
// converted to ISO-8859-1.
func AppendLine(dst []byte, vals []Value) ([]byte, error) {
	start := len(dst)
	for _, v := range vals {
		d, err := token.Encode(v.String())
		if err != nil {
			return nil, err
		}
		dst = token.AppendQuoted(dst, d)
		dst = append(dst, ',')
	}
	dst = crc.AppendField(dst, crc.Checksum(dst[start:]))
	return append(dst, '\r', '\n'), nil
}
