package record

import (
	"fmt"
	"slices"

	"github.com/carlosqueiroz/rtp-connect/debug"
)

// ResolveParent walks up from candidate, candidate included, to the
// first record with keyword want.  Records of other types in between
// are skipped.
func ResolveParent(candidate Record, want Keyword) (Record, error) {
	for r := candidate; r != nil; r = r.Parent() {
		if r.Keyword() == want {
			if debug.Resolve() {
				debug.Logf("resolved %s from %s\n", want, candidate.Keyword())
			}
			return r, nil
		}
	}
	e := &HierarchyErr{Want: want}
	if candidate != nil {
		e.From = candidate.Keyword()
	}
	return nil, e
}

// AddChild attaches child to b.  The child's type must name b's type
// as its parent and the child must not be owned elsewhere.  A child of
// a singleton type replaces any existing child of that type.
func (b *base) AddChild(child Record) error {
	cb := child.rec()
	if cb.schema.Parent != b.schema.Keyword {
		return &HierarchyErr{
			From:   b.schema.Keyword,
			Want:   cb.schema.Parent,
			Reason: fmt.Sprintf("%s cannot own %s", b.schema.Keyword, cb.schema.Keyword),
		}
	}
	if cb.parent != nil {
		if cb.parent.rec() == b {
			return nil
		}
		return &HierarchyErr{
			From:   b.schema.Keyword,
			Want:   cb.schema.Parent,
			Reason: fmt.Sprintf("%s already belongs to a %s", cb.schema.Keyword, cb.parent.Keyword()),
		}
	}
	cb.parent = b.self
	if cb.schema.Singleton {
		i := slices.IndexFunc(b.children, func(c Record) bool { return c.Keyword() == cb.schema.Keyword })
		if i >= 0 {
			b.children[i].rec().parent = nil
			b.children[i] = child
			return nil
		}
	}
	b.children = append(b.children, child)
	return nil
}

// RemoveChild detaches child, and with it the child's subtree.  It
// reports whether child was found.
func (b *base) RemoveChild(child Record) bool {
	cb := child.rec()
	i := slices.IndexFunc(b.children, func(c Record) bool { return c.rec() == cb })
	if i < 0 {
		return false
	}
	b.children = slices.Delete(b.children, i, i+1)
	cb.parent = nil
	return true
}

// Root returns the topmost ancestor of r.
func Root(r Record) Record {
	for r.Parent() != nil {
		r = r.Parent()
	}
	return r
}

// Depth returns the number of ancestors of r.
func Depth(r Record) int {
	d := 0
	for p := r.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Walk calls f on r and its descendants in pre-order, which is the
// order records appear in a document.  If f returns false the
// children of that record are skipped.
func Walk(r Record, f func(r Record, depth int) bool) {
	walk(r, 0, f)
}

func walk(r Record, depth int, f func(Record, int) bool) {
	if !f(r, depth) {
		return
	}
	for _, c := range r.rec().children {
		walk(c, depth+1, f)
	}
}

// Flatten returns r and its descendants in pre-order.
func Flatten(r Record) []Record {
	var res []Record
	Walk(r, func(r Record, _ int) bool {
		res = append(res, r)
		return true
	})
	return res
}

func attach(parent, r Record) error {
	p, err := ResolveParent(parent, r.Schema().Parent)
	if err != nil {
		return err
	}
	return p.AddChild(r)
}
