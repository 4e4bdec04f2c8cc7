package record

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"maps"
	"slices"
)

// Record is one typed line of an RTP document together with its place
// in the plan hierarchy.  All concrete record types in this package
// implement it.
type Record interface {
	Keyword() Keyword
	Schema() *Schema
	// SetKeyword validates kw against the record type.
	SetKeyword(kw string) error

	// Parent returns the owning record, nil for a root or detached
	// record.
	Parent() Record
	// Children returns the owned records in insertion order.
	Children() []Record
	AddChild(child Record) error
	RemoveChild(child Record) bool

	// CRC returns the checksum text read from the source line.
	CRC() string
	// Unknown returns values beyond the known schema, read from lines
	// written by newer versions of the format.
	Unknown() []Value

	// Values returns the keyword followed by every attribute, in wire
	// order.
	Values() []Value
	Attr(name string) (Value, bool)
	SetAttr(name string, v Value) error
	Map() map[string]Value

	Encode(opts ...EncodeOption) ([]byte, error)
	Text(opts ...EncodeOption) ([]byte, error)

	Equal(other Record) bool
	Hash() uint64

	rec() *base
}

// base implements Record for every concrete type.  slots point at the
// attribute fields of the concrete struct, in schema order.
type base struct {
	schema   *Schema
	self     Record
	slots    []*Value
	crc      string
	unknown  []Value
	parent   Record
	children []Record
}

func (b *base) init(s *Schema, self Record, slots ...*Value) {
	if len(slots) != len(s.Attrs) {
		panic(fmt.Sprintf("record: %s has %d slots for %d attributes", s.Keyword, len(slots), len(s.Attrs)))
	}
	b.schema = s
	b.self = self
	b.slots = slots
}

func (b *base) rec() *base { return b }

func (b *base) Keyword() Keyword { return b.schema.Keyword }
func (b *base) Schema() *Schema  { return b.schema }
func (b *base) Parent() Record   { return b.parent }
func (b *base) CRC() string      { return b.crc }

func (b *base) Children() []Record {
	return slices.Clone(b.children)
}

func (b *base) Unknown() []Value {
	return slices.Clone(b.unknown)
}

func (b *base) SetKeyword(kw string) error {
	if Canonical(kw) != b.schema.Keyword {
		return fmt.Errorf("%w: expected %s, got %q", ErrKeyword, b.schema.Keyword, kw)
	}
	return nil
}

func (b *base) Values() []Value {
	res := make([]Value, 0, len(b.slots)+1)
	res = append(res, V(string(b.schema.Keyword)))
	for _, p := range b.slots {
		res = append(res, *p)
	}
	return res
}

func (b *base) Attr(name string) (Value, bool) {
	i, ok := b.schema.Index(name)
	if !ok {
		return Null, false
	}
	if i == 0 {
		return V(string(b.schema.Keyword)), true
	}
	return *b.slots[i-1], true
}

// SetAttr assigns an attribute by name.  Setting "keyword" validates
// the value instead of changing it.
func (b *base) SetAttr(name string, v Value) error {
	i, ok := b.schema.Index(name)
	if !ok {
		return fmt.Errorf("%w: %s has no attribute %q", ErrUnknownAttr, b.schema.Keyword, name)
	}
	if i == 0 {
		return b.SetKeyword(v.String())
	}
	b.set(i-1, v)
	return nil
}

func (b *base) set(i int, v Value) {
	if b.schema.Attrs[i].Trim {
		v = v.Trim()
	}
	*b.slots[i] = v
}

func (b *base) Map() map[string]Value {
	res := make(map[string]Value, len(b.slots)+1)
	res["keyword"] = V(string(b.schema.Keyword))
	for i, p := range b.slots {
		res[b.schema.Attrs[i].Name] = *p
	}
	return res
}

// Equal reports whether other has the same keyword and attribute
// values as they would be written, so a null value equals "".
// Checksums, unknown values and hierarchy are ignored.
func (b *base) Equal(other Record) bool {
	if other == nil || other.Keyword() != b.schema.Keyword {
		return false
	}
	return slices.EqualFunc(b.Values(), other.Values(), Value.Equal)
}

var hashSeed = maphash.MakeSeed()

// Hash returns a hash of the record's values, consistent with Equal
// within a process.
func (b *base) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	var n [8]byte
	for _, v := range b.Values() {
		binary.LittleEndian.PutUint64(n[:], uint64(len(v.s)))
		h.Write(n[:])
		h.WriteString(v.s)
	}
	return h.Sum64()
}

// Clone returns a detached copy of r without its children.
func Clone(r Record) Record {
	c := r.Schema().New()
	cb, rb := c.rec(), r.rec()
	for i, p := range rb.slots {
		*cb.slots[i] = *p
	}
	cb.crc = rb.crc
	cb.unknown = slices.Clone(rb.unknown)
	return c
}

// FromMap builds a detached record of the schema's type from
// attribute values.  Missing attributes stay null.
func FromMap(s *Schema, m map[string]Value) (Record, error) {
	r := s.New()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if err := r.SetAttr(k, m[k]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func childrenOf[T Record](b *base) []T {
	var res []T
	for _, c := range b.children {
		if t, ok := c.(T); ok {
			res = append(res, t)
		}
	}
	return res
}

func childOf[T Record](b *base) T {
	for _, c := range b.children {
		if t, ok := c.(T); ok {
			return t
		}
	}
	var zero T
	return zero
}

// setArray copies vs into a fixed length attribute array.
func setArray(dst, vs []Value, name string) error {
	if len(vs) != len(dst) {
		return &LengthErr{Attr: name, Want: len(dst), Got: len(vs)}
	}
	copy(dst, vs)
	return nil
}
