package crc

import (
	"errors"
	"fmt"
)

var ErrMismatch = errors.New("checksum mismatch")

// MismatchErr reports a line whose stored checksum does not match its
// content.
type MismatchErr struct {
	Stored   string
	Computed uint16
}

func (e *MismatchErr) Error() string {
	return fmt.Sprintf("%s: stored %q, computed %d", ErrMismatch, e.Stored, e.Computed)
}

func (e *MismatchErr) Unwrap() error {
	return ErrMismatch
}
