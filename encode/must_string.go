package encode

import (
	"bytes"

	"github.com/carlosqueiroz/rtp-connect/record"
)

func MustString(root record.Record, opts ...record.EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(root, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
