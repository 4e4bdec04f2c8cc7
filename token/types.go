package token

import (
	"fmt"
)

type TokenType int

const (
	// TNull is an empty, unquoted gap between two commas.
	TNull TokenType = iota
	// TString is a double quoted field, possibly empty.
	TString
	// TBare is a non-empty unquoted field.
	TBare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNull:   "TNull",
		TString: "TString",
		TBare:   "TBare",
	}[t]
}

// Token is one field of an RTP line.  Bytes holds the unescaped
// field content in the line's original ISO-8859-1 encoding.
type Token struct {
	Type  TokenType
	Col   int
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s at column %d", t.Type, t.Col)
}

// String returns the decoded field content.  Null tokens give "".
func (t *Token) String() string {
	if t.Type == TNull {
		return ""
	}
	return Decode(t.Bytes)
}

func (t *Token) IsNull() bool {
	return t.Type == TNull
}

type TokenizeErr struct {
	Err error
	Col int
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, col int) *TokenizeErr {
	return &TokenizeErr{Err: e, Col: col}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at column %d", e.Err.Error(), e.Col)
}

func UnexpectedErr(what string, col int) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected %s", ErrFormat, what), col)
}
