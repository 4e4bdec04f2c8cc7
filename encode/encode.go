package encode

import (
	"bufio"
	"bytes"
	"io"

	"github.com/carlosqueiroz/rtp-connect/debug"
	"github.com/carlosqueiroz/rtp-connect/record"
)

// Encode writes root and its descendants to w, one line per record in
// document order.
func Encode(root record.Record, w io.Writer, opts ...record.EncodeOption) error {
	bw := bufio.NewWriter(w)
	n := 0
	for _, r := range record.Flatten(root) {
		line, err := r.Encode(opts...)
		if err != nil {
			return err
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
		n++
	}
	if debug.Encode() {
		debug.Logf("encoded %d records (version %s)\n", n, record.VersionFromOpts(opts...))
	}
	return bw.Flush()
}

func Bytes(root record.Record, opts ...record.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
