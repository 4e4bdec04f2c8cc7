package token

import (
	"bytes"
	"log/slog"
)

type tokenOpts struct {
	repair bool
	logger *slog.Logger
}

type TokenOpt func(*tokenOpts)

// Repair makes Tokenize recover from malformed quoting instead of
// failing.
func Repair(v bool) TokenOpt {
	return func(o *tokenOpts) { o.repair = v }
}

// TokenLogger sets the logger used to report repaired lines.
func TokenLogger(l *slog.Logger) TokenOpt {
	return func(o *tokenOpts) { o.logger = l }
}

// Tokenize splits a single RTP line into its fields.  A trailing line
// terminator is ignored.  An empty line gives no tokens.
func Tokenize(line []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, opt := range opts {
		opt(o)
	}
	line = TrimEOL(line)
	if len(line) == 0 {
		return nil, nil
	}
	toks, err := tokenize(line)
	if err == nil || !o.repair {
		return toks, err
	}
	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("malformed line, attempting repair", "error", err)
	return repair(line), nil
}

// TrimEOL removes one trailing "\r\n" or "\n".
func TrimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte{'\n'})
	return bytes.TrimSuffix(line, []byte{'\r'})
}

func tokenize(d []byte) ([]Token, error) {
	n := len(d)
	toks := make([]Token, 0, bytes.Count(d, []byte{','})+1)
	i := 0
	for {
		start := i
		if i < n && d[i] == '"' {
			buf := make([]byte, 0, 8)
			i++
			closed := false
			for i < n {
				c := d[i]
				if c != '"' {
					buf = append(buf, c)
					i++
					continue
				}
				if i+1 < n && d[i+1] == '"' {
					buf = append(buf, '"')
					i += 2
					continue
				}
				i++
				closed = true
				break
			}
			if !closed {
				return nil, NewTokenizeErr(ErrUnclosedQuote, start)
			}
			if i < n && d[i] != ',' {
				return nil, UnexpectedErr("text after quoted field", i)
			}
			toks = append(toks, Token{Type: TString, Col: start, Bytes: buf})
		} else {
			j := i
			for j < n && d[j] != ',' {
				if d[j] == '"' {
					return nil, UnexpectedErr("quote in unquoted field", j)
				}
				j++
			}
			if j == i {
				toks = append(toks, Token{Type: TNull, Col: start})
			} else {
				toks = append(toks, Token{Type: TBare, Col: start, Bytes: bytes.Clone(d[i:j])})
			}
			i = j
		}
		if i >= n {
			return toks, nil
		}
		// skip the comma
		i++
	}
}

// repair handles lines whose fields contain unescaped quotes: the
// outer quotes are stripped, the line is split on `","` and any
// remaining quote becomes a single quote.
func repair(line []byte) []Token {
	d := bytes.TrimSpace(line)
	d = bytes.TrimPrefix(d, []byte{'"'})
	d = bytes.TrimSuffix(d, []byte{'"'})
	parts := bytes.Split(d, []byte(`","`))
	toks := make([]Token, len(parts))
	col := 1
	for i, part := range parts {
		toks[i] = Token{
			Type:  TString,
			Col:   col,
			Bytes: bytes.ReplaceAll(part, []byte{'"'}, []byte{'\''}),
		}
		col += len(part) + 3
	}
	return toks
}
