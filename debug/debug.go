package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Encode  bool
	Resolve bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("RTP_DEBUG_PARSE")
	d.Encode = boolEnv("RTP_DEBUG_ENCODE")
	d.Resolve = boolEnv("RTP_DEBUG_RESOLVE")
	d.Convert = boolEnv("RTP_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Resolve() bool {
	return d.Resolve
}
func Convert() bool {
	return d.Convert
}

// LogAny writes v to stderr as one line of JSON, or with %v if it
// cannot be marshaled.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
