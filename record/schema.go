package record

import (
	"fmt"
	"slices"
	"strings"
)

// Keyword identifies a record type.  It is the first field of every
// line.
type Keyword string

const (
	KeywordPlan            Keyword = "PLAN_DEF"
	KeywordExtendedPlan    Keyword = "EXTENDED_PLAN_DEF"
	KeywordPrescription    Keyword = "RX_DEF"
	KeywordSiteSetup       Keyword = "SITE_SETUP_DEF"
	KeywordSimulationField Keyword = "SIM_DEF"
	KeywordField           Keyword = "FIELD_DEF"
	KeywordExtendedField   Keyword = "EXTENDED_FIELD_DEF"
	KeywordControlPoint    Keyword = "CONTROL_PT_DEF"
	KeywordDoseTracking    Keyword = "DOSE_DEF"
	KeywordDoseAction      Keyword = "DOSE_ACTION"
)

// Attr describes one attribute of a record type.
type Attr struct {
	Name string
	// Since is the format version that introduced the attribute, or 0
	// if every version has it.
	Since Version
	// Trim strips white space from values assigned on load or through
	// SetAttr.
	Trim bool
}

// Schema describes the layout of one record type.  Attrs excludes the
// keyword, which always comes first on the wire.
type Schema struct {
	Keyword Keyword
	Attrs   []Attr
	// Min is the fewest elements, keyword and checksum included, that a
	// line of this type may carry.
	Min int
	// Parent is the keyword of the owning record type, empty for the
	// root.
	Parent Keyword
	// Singleton types have at most one instance per parent.
	Singleton bool

	newRecord func() Record
	index     map[string]int
}

// Max is the number of elements, keyword and checksum included, known
// for this type.
func (s *Schema) Max() int {
	return len(s.Attrs) + 2
}

// Len is the number of values of a record of this type, keyword
// included.
func (s *Schema) Len() int {
	return len(s.Attrs) + 1
}

// New returns a detached record of this type with all attributes null.
func (s *Schema) New() Record {
	return s.newRecord()
}

// Index returns the position of the named attribute in the value list,
// where the keyword is at 0.
func (s *Schema) Index(name string) (int, bool) {
	if name == "keyword" {
		return 0, true
	}
	i, ok := s.index[name]
	if !ok {
		return 0, false
	}
	return i + 1, true
}

// Names returns the attribute names in wire order, starting with
// "keyword".
func (s *Schema) Names() []string {
	res := make([]string, 0, s.Len())
	res = append(res, "keyword")
	for i := range s.Attrs {
		res = append(res, s.Attrs[i].Name)
	}
	return res
}

// supported returns how many values of a record may be written when
// targeting v.  Only trailing attributes are version gated.
func (s *Schema) supported(v Version) int {
	n := len(s.Attrs)
	for n > 0 && !v.supports(s.Attrs[n-1].Since) {
		n--
	}
	return n + 1
}

func (s *Schema) String() string {
	return string(s.Keyword)
}

var (
	registry = map[Keyword]*Schema{}
	schemas  []*Schema
)

func register(s *Schema, ctor func() Record) {
	if _, ok := registry[s.Keyword]; ok {
		panic(fmt.Sprintf("record: duplicate schema %s", s.Keyword))
	}
	s.newRecord = ctor
	s.index = make(map[string]int, len(s.Attrs))
	for i := range s.Attrs {
		s.index[s.Attrs[i].Name] = i
	}
	registry[s.Keyword] = s
	schemas = append(schemas, s)
}

// Lookup finds the schema for a keyword, ignoring case and surrounding
// white space.
func Lookup(keyword string) (*Schema, bool) {
	s, ok := registry[Canonical(keyword)]
	return s, ok
}

// Canonical returns the canonical upper case form of a keyword.
func Canonical(keyword string) Keyword {
	return Keyword(strings.ToUpper(strings.TrimSpace(keyword)))
}

// Schemas returns all registered schemas.
func Schemas() []*Schema {
	return slices.Clone(schemas)
}

func attrs(names ...string) []Attr {
	res := make([]Attr, len(names))
	for i, n := range names {
		res[i] = Attr{Name: n}
	}
	return res
}

func since(v Version, as []Attr) []Attr {
	for i := range as {
		as[i].Since = v
	}
	return as
}

func trimmed(as []Attr, names ...string) []Attr {
	for _, n := range names {
		i := slices.IndexFunc(as, func(a Attr) bool { return a.Name == n })
		if i < 0 {
			panic(fmt.Sprintf("record: no attribute %q to trim", n))
		}
		as[i].Trim = true
	}
	return as
}

func trimAll(as []Attr) []Attr {
	for i := range as {
		as[i].Trim = true
	}
	return as
}

func numbered(prefix string, n int) []string {
	res := make([]string, n)
	for i := range res {
		res[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	return res
}
