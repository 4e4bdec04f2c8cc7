package rtp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/carlosqueiroz/rtp-connect/encode"
	"github.com/carlosqueiroz/rtp-connect/parse"
	"github.com/carlosqueiroz/rtp-connect/record"
)

// Read parses the RTP document at path.
func Read(path string, opts ...parse.ParseOption) (*record.Plan, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	plan, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plan, nil
}

// ParseString parses an RTP document held in a string.
func ParseString(s string, opts ...parse.ParseOption) (*record.Plan, error) {
	return parse.ParseString(s, opts...)
}

// Encode returns the document for root and its descendants.
func Encode(root record.Record, opts ...record.EncodeOption) ([]byte, error) {
	return encode.Bytes(root, opts...)
}

// Write encodes root and replaces the file at path with the result.
// The file is written next to path under a temporary name and renamed
// into place, so readers never see a partial document.
func Write(path string, root record.Record, opts ...record.EncodeOption) error {
	d, err := encode.Bytes(root, opts...)
	if err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(d); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
