package rtpdiff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/carlosqueiroz/rtp-connect/encode"
	"github.com/carlosqueiroz/rtp-connect/record"
)

// Write prints the non-equal changes in cs, one record per line with
// modified attributes indented below it.  colors may be nil.
func Write(w io.Writer, cs []Change, colors *encode.Colors) error {
	if colors == nil {
		colors = &encode.Colors{Default: func(s string, _ ...any) string { return s }}
	}
	bw := bufio.NewWriter(w)
	for _, c := range cs {
		switch c.Op {
		case Delete:
			fmt.Fprintf(bw, "%s\n", colors.Color(encode.DeleteColor, "- "+label(c.From, c.FromIndex)))
		case Insert:
			fmt.Fprintf(bw, "%s\n", colors.Color(encode.InsertColor, "+ "+label(c.To, c.ToIndex)))
		case Modify:
			fmt.Fprintf(bw, "~ %s\n", colors.Color(encode.KeywordColor, label(c.To, c.ToIndex)))
			for _, a := range c.Attrs {
				fmt.Fprintf(bw, "    %s: %s -> %s\n",
					colors.Color(encode.NameColor, a.Name),
					colors.Color(encode.DeleteColor, quote(a.From)),
					colors.Color(encode.InsertColor, quote(a.To)))
			}
		}
	}
	return bw.Flush()
}

func quote(v record.Value) string {
	if v.IsNull() {
		return "null"
	}
	return strconv.Quote(v.String())
}

// label names a record by position, keyword and its first two
// non-empty attributes.
func label(r record.Record, i int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d] %s", i, r.Keyword())
	vals := r.Values()
	names := r.Schema().Names()
	n := 0
	for j := 1; j < len(vals) && n < 2; j++ {
		if vals[j].IsEmpty() {
			continue
		}
		fmt.Fprintf(&sb, " %s=%q", names[j], vals[j].String())
		n++
	}
	return sb.String()
}
