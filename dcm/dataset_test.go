package dcm

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestTag(t *testing.T) {
	tag := NewTag(0x300a, 0x00b0)
	if tag != BeamSequence {
		t.Fatalf("got %08x", uint32(tag))
	}
	if tag.String() != "300A,00B0" || tag.Group() != 0x300a || tag.Element() != 0xb0 {
		t.Errorf("tag parts %s %x %x", tag, tag.Group(), tag.Element())
	}
	for _, s := range []string{"300A,00B0", "300a,00b0", "(300A,00B0)"} {
		got, err := ParseTag(s)
		if err != nil || got != tag {
			t.Errorf("%q: %s %v", s, got, err)
		}
	}
	for _, s := range []string{"", "300A00B0", "30A,00B0", "300G,00B0"} {
		if _, err := ParseTag(s); !errors.Is(err, ErrTag) {
			t.Errorf("%q: expected ErrTag, got %v", s, err)
		}
	}
}

func TestDatasetOrder(t *testing.T) {
	ds := New()
	ds.Set(PatientID, "1")
	ds.Set(SpecificCharacterSet, "ISO_IR 100")
	ds.Sequence(BeamSequence)
	ds.Set(Modality, "RTPLAN")
	ds.Set(PatientID, "2")
	var tags []Tag
	for _, e := range ds.Elements {
		tags = append(tags, e.Tag)
	}
	if diff := cmp.Diff([]Tag{SpecificCharacterSet, Modality, PatientID, BeamSequence}, tags); diff != "" {
		t.Errorf("order (-want +got):\n%s", diff)
	}
	if ds.Value(PatientID) != "2" {
		t.Errorf("replaced value %q", ds.Value(PatientID))
	}
	e := ds.Get(PatientID)
	if e.VR != "LO" || e.Name != "Patient ID" {
		t.Errorf("dictionary entry %+v", e)
	}
	if ds.Get(NumberOfBeams) != nil || ds.Value(NumberOfBeams) != "" || ds.Items(NumberOfBeams) != nil {
		t.Errorf("missing element found")
	}
	unknown := ds.Set(NewTag(0x0009, 0x0010), "x")
	if unknown.VR != "UN" || unknown.Name != "" {
		t.Errorf("unknown tag %+v", unknown)
	}
}

func TestDatasetSequence(t *testing.T) {
	ds := New()
	seq := ds.Sequence(BeamSequence)
	if ds.Sequence(BeamSequence) != seq {
		t.Errorf("sequence not reused")
	}
	b := seq.AddItem()
	b.Set(BeamName, "MED")
	cp := b.Sequence(ControlPointSequence).AddItem()
	cp.Set(ControlPointIndex, "0")
	seq.AddItem().Set(BeamName, "LAT")

	var got []string
	ds.Walk(func(e *Element, depth int) bool {
		got = append(got, strings.Repeat(" ", depth)+e.Name)
		return e.Tag != ControlPointSequence
	})
	want := []string{"Beam Sequence", " Beam Name", " Control Point Sequence", " Beam Name"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walk (-want +got):\n%s", diff)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("expected panic adding an item to a value element")
		}
	}()
	b.Get(BeamName).AddItem()
}

func TestElementValues(t *testing.T) {
	e := &Element{Value: `12.0\-34.0\50.0`}
	if diff := cmp.Diff([]string{"12.0", "-34.0", "50.0"}, e.Values()); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if (&Element{}).Values() != nil {
		t.Errorf("empty element has values")
	}
}

func TestUID(t *testing.T) {
	u := uuid.MustParse("00000000-0000-0000-0000-0000000000ff")
	if got := UUIDToUID(u); got != "2.25.255" {
		t.Errorf("got %s", got)
	}
	a, b := NewUID(), NewUID()
	if a == b || !strings.HasPrefix(a, UIDRoot) {
		t.Errorf("uids %s %s", a, b)
	}
	if len(a) > 64 {
		t.Errorf("uid too long: %d", len(a))
	}
}

func TestLeafBoundaries(t *testing.T) {
	tests := []struct {
		n          int
		len        int
		first, mid int
	}{
		{40, 41, -200, 0},
		{80, 81, -200, 0},
		{60, 61, -200, 0},
		{29, 30, -200, -7},
	}
	for _, tc := range tests {
		b := LeafBoundaries(tc.n)
		if len(b) != tc.len || b[0] != tc.first || b[len(b)-1] != 200 {
			t.Errorf("%d: %v", tc.n, b)
			continue
		}
		if b[tc.n/2] != tc.mid {
			t.Errorf("%d: middle %d", tc.n, b[tc.n/2])
		}
		for i := 1; i < len(b); i++ {
			if b[i] <= b[i-1] {
				t.Errorf("%d: not increasing at %d", tc.n, i)
			}
		}
	}
	mil := LeafBoundaries(60)
	if mil[9] != -110 || mil[10] != -100 || mil[11] != -95 || mil[50] != 100 || mil[51] != 110 {
		t.Errorf("millennium layout %v", mil)
	}
	if LeafBoundaries(0) != nil {
		t.Errorf("boundaries for no leaves")
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		f    float64
		want string
	}{
		{0, "0.0"},
		{1000, "1000.0"},
		{112.4, "112.4"},
		{-34, "-34.0"},
		{round(1.23456789, 4), "1.2346"},
	}
	for _, tc := range tests {
		if got := ftoa(tc.f); got != tc.want {
			t.Errorf("%v: got %s want %s", tc.f, got, tc.want)
		}
	}
	if truncate("Bryst høyre og venstre", 16) != "Bryst høyre og v" {
		t.Errorf("truncate %q", truncate("Bryst høyre og venstre", 16))
	}
}
