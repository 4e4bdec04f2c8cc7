package debug

import (
	"encoding/json"
	"fmt"
	"os"
)

// Logf writes a debug message to stderr.  Maps and slices are rendered
// as indented JSON, byte slices as quoted text.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, []string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case []byte:
			args[i] = fmt.Sprintf("%q", x)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
