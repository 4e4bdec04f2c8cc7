package dcm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
)

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	encOpts := cbor.CoreDetEncOptions()
	encOpts.TextMarshaler = cbor.TextMarshalerTextString
	cborEnc, err = encOpts.EncMode()
	if err != nil {
		panic("dcm: cbor encoder: " + err.Error())
	}
	cborDec, err = cbor.DecOptions{
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("dcm: cbor decoder: " + err.Error())
	}
}

// Marshal renders ds in format f.
func Marshal(ds *Dataset, f Format) ([]byte, error) {
	switch f {
	case YAMLFormat:
		return yaml.Marshal(ds)
	case JSONFormat:
		d, err := json.MarshalIndent(ds, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(d, '\n'), nil
	case CBORFormat:
		return cborEnc.Marshal(ds)
	case TextFormat:
		return Text(ds), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrBadFormat, f)
	}
}

// Unmarshal reads a dataset written by Marshal.  The text format
// cannot be read back.
func Unmarshal(d []byte, f Format) (*Dataset, error) {
	ds := New()
	var err error
	switch f {
	case YAMLFormat:
		err = yaml.Unmarshal(d, ds)
	case JSONFormat:
		err = json.Unmarshal(d, ds)
	case CBORFormat:
		err = cborDec.Unmarshal(d, ds)
	default:
		return nil, fmt.Errorf("%w: cannot read %s", ErrBadFormat, f)
	}
	if err != nil {
		return nil, err
	}
	return ds, nil
}

// Text renders ds as an indented listing, one element per line, in
// the style of a DICOM dump.
func Text(ds *Dataset) []byte {
	buf := &bytes.Buffer{}
	ds.Walk(func(e *Element, depth int) bool {
		indent := strings.Repeat("  ", depth)
		if e.IsSequence() {
			fmt.Fprintf(buf, "%s(%s) SQ %s [%d items]\n", indent, e.Tag, e.Name, len(e.Items))
			return true
		}
		fmt.Fprintf(buf, "%s(%s) %s %s: %q\n", indent, e.Tag, e.VR, e.Name, e.Value)
		return true
	})
	return buf.Bytes()
}
