package record

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value is a nullable attribute value.  The zero Value is null.
type Value struct {
	s     string
	valid bool
}

// Null is the null Value.
var Null Value

// V returns a non-null Value holding s.
func V(s string) Value {
	return Value{s: s, valid: true}
}

// Values converts strings to non-null Values.
func Values(ss ...string) []Value {
	res := make([]Value, len(ss))
	for i, s := range ss {
		res[i] = V(s)
	}
	return res
}

// String returns the value, or "" if it is null.
func (v Value) String() string {
	return v.s
}

func (v Value) IsNull() bool {
	return !v.valid
}

// IsEmpty reports whether v is null or the empty string.
func (v Value) IsEmpty() bool {
	return v.s == ""
}

// Equal compares the wire form of two values.  Null and the empty
// string encode identically and so are equal.
func (v Value) Equal(o Value) bool {
	return v.s == o.s
}

// Trim returns v with leading and trailing white space removed.  Null
// stays null.
func (v Value) Trim() Value {
	if !v.valid {
		return v
	}
	return V(strings.TrimSpace(v.s))
}

// Float parses the longest numeric prefix of v, ignoring leading white
// space.  It returns 0 if there is none.
func (v Value) Float() float64 {
	s := strings.TrimLeft(v.s, " \t\r\n")
	n := floatPrefix(s)
	if n == 0 {
		return 0
	}
	f, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		return 0
	}
	return f
}

// Int parses the longest integer prefix of v, ignoring leading white
// space.  It returns 0 if there is none.
func (v Value) Int() int {
	s := strings.TrimLeft(v.s, " \t\r\n")
	i := signLen(s)
	n := i + digitsLen(s[i:])
	if n == i {
		return 0
	}
	x, err := strconv.Atoi(s[:n])
	if err != nil {
		return 0
	}
	return x
}

func signLen(s string) int {
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		return 1
	}
	return 0
}

func digitsLen(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func floatPrefix(s string) int {
	i := signLen(s)
	d := digitsLen(s[i:])
	i += d
	if i < len(s) && s[i] == '.' {
		if f := digitsLen(s[i+1:]); f > 0 {
			i += 1 + f
			d += f
		}
	}
	if d == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		j += signLen(s[j:])
		if e := digitsLen(s[j:]); e > 0 {
			i = j + e
		}
	}
	return i
}

// MarshalJSON encodes null as JSON null and anything else as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.valid {
		return []byte("null"), nil
	}
	return json.Marshal(v.s)
}

func (v *Value) UnmarshalJSON(d []byte) error {
	if string(d) == "null" {
		*v = Null
		return nil
	}
	var s string
	if err := json.Unmarshal(d, &s); err != nil {
		return err
	}
	*v = V(s)
	return nil
}
