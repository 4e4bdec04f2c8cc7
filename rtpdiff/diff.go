package rtpdiff

import (
	"strconv"
	"strings"

	"github.com/carlosqueiroz/rtp-connect/record"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
	Modify
)

func (op Op) String() string {
	switch op {
	case Equal:
		return "equal"
	case Delete:
		return "delete"
	case Insert:
		return "insert"
	case Modify:
		return "modify"
	default:
		return "op(" + strconv.Itoa(int(op)) + ")"
	}
}

// AttrChange is a single attribute that differs between two records
// of the same type.
type AttrChange struct {
	Name     string
	From, To record.Value
}

// Change relates a record of the old tree to one of the new tree.
// From is nil for an insertion, To for a deletion.  FromIndex and
// ToIndex are pre-order positions, -1 when absent.
type Change struct {
	Op        Op
	From      record.Record
	To        record.Record
	FromIndex int
	ToIndex   int
	Attrs     []AttrChange
}

// Diff compares the trees rooted at from and to record by record, in
// document order.  A deletion directly followed by an insertion of the
// same record type is reported as a modification with attribute level
// detail.
func Diff(from, to record.Record) []Change {
	fromRecs := record.Flatten(from)
	toRecs := record.Flatten(to)
	m := map[string]rune{}
	fromRunes := mapRecords(m, fromRecs)
	toRunes := mapRecords(m, toRecs)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti := 0, 0
	// deletes not yet paired with an insert
	var pending []int
	for i := range diffs {
		n := len([]rune(diffs[i].Text))
		switch diffs[i].Type {
		case diffpatch.DiffEqual:
			pending = pending[:0]
			for range n {
				res = append(res, Change{Op: Equal, From: fromRecs[fi], To: toRecs[ti], FromIndex: fi, ToIndex: ti})
				fi++
				ti++
			}
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, len(res))
				res = append(res, Change{Op: Delete, From: fromRecs[fi], FromIndex: fi, ToIndex: -1})
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				to := toRecs[ti]
				if j := matchPending(res, pending, to); j >= 0 {
					c := &res[pending[j]]
					c.Op = Modify
					c.To = to
					c.ToIndex = ti
					c.Attrs = Attrs(c.From, to)
					pending = pending[j+1:]
				} else {
					res = append(res, Change{Op: Insert, To: to, FromIndex: -1, ToIndex: ti})
				}
				ti++
			}
		}
	}
	return res
}

// matchPending finds the first pending delete with the keyword of to.
// Deletes before it stay deletes, which keeps pairs in order.
func matchPending(res []Change, pending []int, to record.Record) int {
	for j, ci := range pending {
		if res[ci].From.Keyword() == to.Keyword() {
			return j
		}
	}
	return -1
}

// Attrs lists the attributes whose values differ between a and b,
// which must have the same keyword.
func Attrs(a, b record.Record) []AttrChange {
	names := a.Schema().Names()
	av, bv := a.Values(), b.Values()
	var res []AttrChange
	for i := 1; i < len(names); i++ {
		if av[i].Equal(bv[i]) {
			continue
		}
		res = append(res, AttrChange{Name: names[i], From: av[i], To: bv[i]})
	}
	return res
}

// Changed drops the Equal entries from cs.
func Changed(cs []Change) []Change {
	var res []Change
	for _, c := range cs {
		if c.Op != Equal {
			res = append(res, c)
		}
	}
	return res
}

func mapRecords(m map[string]rune, recs []record.Record) []rune {
	rs := make([]rune, len(recs))
	for i, r := range recs {
		sum := summary(r)
		x, ok := m[sum]
		if !ok {
			x = runeFor(len(m))
			m[sum] = x
		}
		rs[i] = x
	}
	return rs
}

// runeFor avoids the surrogate range, which does not survive the
// conversions to string inside the diff.
func runeFor(i int) rune {
	r := rune(i)
	if r >= 0xD800 {
		r += 0x800
	}
	return r
}

func summary(r record.Record) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(record.Depth(r)))
	for _, v := range r.Values() {
		sb.WriteByte(0)
		sb.WriteString(v.String())
	}
	return sb.String()
}
