package patch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"github.com/carlosqueiroz/rtp-connect/debug"
	"github.com/carlosqueiroz/rtp-connect/record"

	jsonpatch "github.com/evanphx/json-patch"
)

var (
	ErrPatch = errors.New("patch error")
	ErrValue = errors.New("unsupported attribute value")
)

// Apply applies an RFC 6902 JSON patch to the attributes of r.  The
// patch sees r as a JSON object from attribute name to string, with
// null for null values, as given by [record.Record.Map].  Removing an
// attribute makes it null.  Numbers and booleans are stored as their
// JSON text.  r is left unchanged if the patch fails.
func Apply(r record.Record, patch []byte) error {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return apply(r, func(doc []byte) ([]byte, error) {
		return ops.Apply(doc)
	})
}

// Merge applies an RFC 7386 merge patch to the attributes of r.  A
// null in the patch makes the attribute null.
func Merge(r record.Record, patch []byte) error {
	return apply(r, func(doc []byte) ([]byte, error) {
		return jsonpatch.MergePatch(doc, patch)
	})
}

func apply(r record.Record, f func([]byte) ([]byte, error)) error {
	doc, err := json.Marshal(r.Map())
	if err != nil {
		return err
	}
	out, err := f(doc)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPatch, r.Keyword(), err)
	}
	vals, err := decode(out)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrPatch, r.Keyword(), err)
	}
	if kw, ok := vals["keyword"]; !ok || record.Canonical(kw.String()) != r.Keyword() {
		return fmt.Errorf("%w: %w: cannot change %s to %q", ErrPatch, record.ErrKeyword, r.Keyword(), kw.String())
	}
	delete(vals, "keyword")
	for k := range vals {
		if _, ok := r.Schema().Index(k); !ok {
			return fmt.Errorf("%w: %w: %s has no attribute %q", ErrPatch, record.ErrUnknownAttr, r.Keyword(), k)
		}
	}
	if debug.Encode() {
		debug.Logf("patching %s with %s\n", r.Keyword(), out)
	}
	for _, name := range r.Schema().Names()[1:] {
		v, ok := vals[name]
		if !ok {
			v = record.Null
		}
		if err := r.SetAttr(name, v); err != nil {
			return err
		}
	}
	return nil
}

func decode(d []byte) (map[string]record.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	res := make(map[string]record.Value, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		switch x := m[k].(type) {
		case nil:
			res[k] = record.Null
		case string:
			res[k] = record.V(x)
		case json.Number:
			res[k] = record.V(x.String())
		case bool:
			res[k] = record.V(strconv.FormatBool(x))
		default:
			return nil, fmt.Errorf("%w: %s is %T", ErrValue, k, x)
		}
	}
	return res, nil
}

// ApplyTree patches every record of the given keyword under root, in
// document order, and returns how many were patched.  With merge the
// patch is a merge patch, otherwise a JSON patch.  It stops at the
// first failure.
func ApplyTree(root record.Record, keyword string, patch []byte, merge bool) (int, error) {
	kw := record.Canonical(keyword)
	if _, ok := record.Lookup(string(kw)); !ok {
		return 0, fmt.Errorf("%w: %w: %q", ErrPatch, record.ErrUnknownKeyword, keyword)
	}
	var ops jsonpatch.Patch
	if !merge {
		var err error
		ops, err = jsonpatch.DecodePatch(patch)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrPatch, err)
		}
	}
	n := 0
	for _, r := range record.Flatten(root) {
		if r.Keyword() != kw {
			continue
		}
		var err error
		if merge {
			err = Merge(r, patch)
		} else {
			err = apply(r, func(doc []byte) ([]byte, error) { return ops.Apply(doc) })
		}
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
