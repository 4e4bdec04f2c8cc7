package token

// AppendQuoted appends b to dst as a double quoted field, doubling
// any embedded quote.
func AppendQuoted(dst, b []byte) []byte {
	dst = append(dst, '"')
	for _, c := range b {
		if c == '"' {
			dst = append(dst, '"', '"')
			continue
		}
		dst = append(dst, c)
	}
	return append(dst, '"')
}

func Quote(b []byte) []byte {
	return AppendQuoted(make([]byte, 0, len(b)+2), b)
}
