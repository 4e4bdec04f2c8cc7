package parse

import (
	"errors"
	"fmt"

	"github.com/carlosqueiroz/rtp-connect/record"
)

var (
	ErrFormat         = record.ErrFormat
	ErrUnknownKeyword = record.ErrUnknownKeyword
	ErrNotPlan        = fmt.Errorf("%w: document does not start with %s", ErrFormat, record.KeywordPlan)
	ErrSecondPlan     = fmt.Errorf("%w: more than one %s", ErrFormat, record.KeywordPlan)
	ErrEmpty          = errors.New("empty document")
)

// LineErr locates an error at a line of the document, counting from 1.
type LineErr struct {
	Line int
	Err  error
}

func (e *LineErr) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineErr) Unwrap() error {
	return e.Err
}
