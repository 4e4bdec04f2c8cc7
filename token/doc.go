// Package token splits RTP lines into fields.
//
// An RTP line is a comma separated list of double quoted fields.  A
// quote inside a field is written as two quotes.  A gap with nothing
// between two commas is a null field, which is distinct from an empty
// quoted field.
//
// # Usage
//
//	toks, err := token.Tokenize([]byte(`"RX_DEF","1","Prostate",,"1234"`))
//	if err != nil {
//	    return err
//	}
//	toks[3].IsNull() // true
//
// Lines are treated as raw ISO-8859-1 bytes.  [Token.String] and
// [Encode] convert between that encoding and Go strings.
//
// # Related Packages
//
//   - github.com/carlosqueiroz/rtp-connect/crc - line checksums
//   - github.com/carlosqueiroz/rtp-connect/record - typed records built from tokens
package token
