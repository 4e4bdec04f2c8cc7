package dcm

import (
	"math"
	"strconv"
	"strings"

	"github.com/carlosqueiroz/rtp-connect/record"
)

// ftoa formats a decimal string value; integral values keep a ".0".
func ftoa(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

// mm converts a cm value to mm.
func mm(v record.Value) string {
	return ftoa(v.Float() * 10)
}

// mmOrEmpty is mm but keeps empty values empty.
func mmOrEmpty(v record.Value) string {
	if v.IsEmpty() {
		return ""
	}
	return mm(v)
}

func join(fs []float64) string {
	ss := make([]string, len(fs))
	for i, f := range fs {
		ss[i] = ftoa(f)
	}
	return strings.Join(ss, `\`)
}

func orDefault(v record.Value, def string) string {
	if v.IsEmpty() {
		return def
	}
	return v.String()
}

// truncate keeps at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
