package dcm

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sample() *Dataset {
	ds := New()
	ds.Set(PatientID, "12345")
	ds.Set(PatientsName, "ALDERSON^TANGMAM^^^")
	b := ds.Sequence(BeamSequence).AddItem()
	b.Set(BeamName, "MED")
	b.Sequence(ControlPointSequence).AddItem().Set(LeafJawPositions, `-50.0\50.0`)
	return ds
}

func TestMarshalRoundTrip(t *testing.T) {
	for _, f := range []Format{YAMLFormat, JSONFormat, CBORFormat} {
		t.Run(f.String(), func(t *testing.T) {
			d, err := Marshal(sample(), f)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Unmarshal(d, f)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(sample(), got); diff != "" {
				t.Errorf("round trip (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	d, err := Marshal(sample(), JSONFormat)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{`"tag": "0010,0020"`, `"vr": "SQ"`, `"name": "Beam Sequence"`} {
		if !bytes.Contains(d, []byte(s)) {
			t.Errorf("missing %s in\n%s", s, d)
		}
	}
}

func TestMarshalCBORDeterministic(t *testing.T) {
	a, err := Marshal(sample(), CBORFormat)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := Marshal(sample(), CBORFormat)
	if !bytes.Equal(a, b) {
		t.Errorf("cbor output differs between runs")
	}
}

func TestText(t *testing.T) {
	want := strings.Join([]string{
		`(0010,0010) PN Patient's Name: "ALDERSON^TANGMAM^^^"`,
		`(0010,0020) LO Patient ID: "12345"`,
		`(300A,00B0) SQ Beam Sequence [1 items]`,
		`  (300A,00C2) LO Beam Name: "MED"`,
		`  (300A,0111) SQ Control Point Sequence [1 items]`,
		`    (300A,011C) DS Leaf/Jaw Positions: "-50.0\\50.0"`,
		``,
	}, "\n")
	d, err := Marshal(sample(), TextFormat)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, string(d)); diff != "" {
		t.Errorf("text (-want +got):\n%s", diff)
	}
	if _, err := Unmarshal(d, TextFormat); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil || g != f {
			t.Errorf("%s: %v %v", f, g, err)
		}
		if f.Suffix() == "" {
			t.Errorf("%s has no suffix", f)
		}
	}
	if f, err := ParseFormat("j"); err != nil || f != JSONFormat {
		t.Errorf("short name: %v %v", f, err)
	}
	if _, err := ParseFormat("dicom"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if _, err := Marshal(New(), Format(42)); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	if !CBORFormat.IsBinary() || YAMLFormat.IsBinary() {
		t.Errorf("IsBinary")
	}
}
