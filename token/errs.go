package token

import (
	"errors"
	"fmt"
)

var (
	ErrFormat = errors.New("format error")

	ErrUnclosedQuote = fmt.Errorf("%w: unclosed quoted field", ErrFormat)
	ErrCharset       = errors.New("not representable in ISO-8859-1")
)
