package dcm

import (
	"slices"
	"strings"
)

// Element is one attribute of a dataset.  Sequence elements (VR "SQ")
// hold their items in Items and have no Value.
type Element struct {
	Tag   Tag        `json:"tag" yaml:"tag" cbor:"1,keyasint"`
	VR    string     `json:"vr" yaml:"vr" cbor:"2,keyasint"`
	Name  string     `json:"name,omitempty" yaml:"name,omitempty" cbor:"3,keyasint,omitempty"`
	Value string     `json:"value,omitempty" yaml:"value,omitempty" cbor:"4,keyasint,omitempty"`
	Items []*Dataset `json:"items,omitempty" yaml:"items,omitempty" cbor:"5,keyasint,omitempty"`
}

// Dataset is an ordered set of elements, kept sorted by tag.  It is
// used both for the top level object and for sequence items.
type Dataset struct {
	Elements []*Element `json:"elements" yaml:"elements" cbor:"1,keyasint"`
}

func New() *Dataset {
	return &Dataset{}
}

func (e *Element) IsSequence() bool {
	return e.VR == "SQ"
}

// Values splits a multi-valued element on backslash.
func (e *Element) Values() []string {
	if e.Value == "" {
		return nil
	}
	return strings.Split(e.Value, `\`)
}

// AddItem appends an empty item to a sequence element.
func (e *Element) AddItem() *Dataset {
	if !e.IsSequence() {
		panic(ErrSequence)
	}
	item := New()
	e.Items = append(e.Items, item)
	return item
}

func (ds *Dataset) search(t Tag) (int, bool) {
	return slices.BinarySearchFunc(ds.Elements, t, func(e *Element, t Tag) int {
		switch {
		case e.Tag < t:
			return -1
		case e.Tag > t:
			return 1
		}
		return 0
	})
}

func (ds *Dataset) put(e *Element) *Element {
	i, found := ds.search(e.Tag)
	if found {
		ds.Elements[i] = e
		return e
	}
	ds.Elements = slices.Insert(ds.Elements, i, e)
	return e
}

func newElement(t Tag) *Element {
	vr, name, ok := Lookup(t)
	if !ok {
		vr = "UN"
	}
	return &Element{Tag: t, VR: vr, Name: name}
}

// Set adds or replaces a value element.
func (ds *Dataset) Set(t Tag, value string) *Element {
	e := newElement(t)
	if e.IsSequence() {
		panic(ErrSequence)
	}
	e.Value = value
	return ds.put(e)
}

// Sequence returns the sequence element for t, creating an empty one
// if needed.
func (ds *Dataset) Sequence(t Tag) *Element {
	if e := ds.Get(t); e != nil {
		if !e.IsSequence() {
			panic(ErrSequence)
		}
		return e
	}
	e := newElement(t)
	e.VR = "SQ"
	return ds.put(e)
}

// Get returns the element for t, or nil.
func (ds *Dataset) Get(t Tag) *Element {
	i, found := ds.search(t)
	if !found {
		return nil
	}
	return ds.Elements[i]
}

// Value returns the value of t, or "" if absent.
func (ds *Dataset) Value(t Tag) string {
	if e := ds.Get(t); e != nil {
		return e.Value
	}
	return ""
}

// Items returns the items of sequence t, or nil if absent.
func (ds *Dataset) Items(t Tag) []*Dataset {
	if e := ds.Get(t); e != nil {
		return e.Items
	}
	return nil
}

// Walk calls f on every element in depth first order.  Elements of
// sequence items have depth one more than the sequence.  If f returns
// false the sequence's items are skipped.
func (ds *Dataset) Walk(f func(e *Element, depth int) bool) {
	ds.walk(f, 0)
}

func (ds *Dataset) walk(f func(*Element, int) bool, depth int) {
	for _, e := range ds.Elements {
		if !f(e, depth) {
			continue
		}
		for _, item := range e.Items {
			item.walk(f, depth+1)
		}
	}
}
