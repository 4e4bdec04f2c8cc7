package record

import (
	"fmt"

	"github.com/carlosqueiroz/rtp-connect/token"
)

// Load reads one line into a new record of the type named by its
// keyword.  A non root record is attached to the nearest ancestor of
// parent with the right type; if there is none Load fails with a
// *HierarchyErr and nothing is attached.
func Load(line []byte, parent Record, opts ...LoadOption) (Record, error) {
	o := loadOptions(opts)
	toks, err := o.tokenize(line)
	if err != nil {
		return nil, err
	}
	return fromTokens(toks, parent, o)
}

// LoadAs is like Load but requires the line to hold a record of type
// T.  The type is checked before anything is attached.
func LoadAs[T Record](line []byte, parent Record, opts ...LoadOption) (T, error) {
	var zero T
	o := loadOptions(opts)
	toks, err := o.tokenize(line)
	if err != nil {
		return zero, err
	}
	s, err := schemaOf(toks)
	if err != nil {
		return zero, err
	}
	r := s.New()
	t, ok := r.(T)
	if !ok {
		return zero, fmt.Errorf("%w: unexpected %s", ErrKeyword, s.Keyword)
	}
	if err := load(r, toks, parent, o); err != nil {
		return zero, err
	}
	return t, nil
}

// LoadPlan reads a PLAN_DEF line.
func LoadPlan(line []byte, opts ...LoadOption) (*Plan, error) {
	return LoadAs[*Plan](line, nil, opts...)
}

// FromTokens is Load for an already tokenized line.
func FromTokens(toks []token.Token, parent Record, opts ...LoadOption) (Record, error) {
	return fromTokens(toks, parent, loadOptions(opts))
}

func fromTokens(toks []token.Token, parent Record, o *loadOpts) (Record, error) {
	s, err := schemaOf(toks)
	if err != nil {
		return nil, err
	}
	r := s.New()
	if err := load(r, toks, parent, o); err != nil {
		return nil, err
	}
	return r, nil
}

func (o *loadOpts) tokenize(line []byte) ([]token.Token, error) {
	return token.Tokenize(line, token.Repair(o.repair), token.TokenLogger(o.logger))
}

func schemaOf(toks []token.Token) (*Schema, error) {
	if len(toks) == 0 {
		return nil, ErrEmptyLine
	}
	kw := toks[0].String()
	s, ok := Lookup(kw)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownKeyword, kw)
	}
	return s, nil
}

func load(r Record, toks []token.Token, parent Record, o *loadOpts) error {
	b := r.rec()
	s := b.schema
	n := len(toks)
	if n < s.Min {
		return &CardinalityErr{Keyword: s.Keyword, Min: s.Min, Got: n}
	}
	if err := b.SetKeyword(toks[0].String()); err != nil {
		return err
	}
	var owner Record
	if s.Parent != "" {
		p, err := ResolveParent(parent, s.Parent)
		if err != nil {
			return err
		}
		owner = p
	}
	if n > s.Max() {
		o.logger.Warn("record has more elements than this version knows, extra elements are ignored",
			"keyword", s.Keyword, "elements", n, "max", s.Max())
	}
	for i, t := range toks[1 : n-1] {
		v := tokenValue(&t)
		if i < len(b.slots) {
			b.set(i, v)
			continue
		}
		b.unknown = append(b.unknown, v)
	}
	b.crc = toks[n-1].String()
	// attaching is last, so an error above leaves the tree untouched
	if owner != nil {
		return owner.AddChild(r)
	}
	return nil
}

func tokenValue(t *token.Token) Value {
	if t.IsNull() {
		return Null
	}
	return V(t.String())
}
