package parse

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/carlosqueiroz/rtp-connect/crc"
	"github.com/carlosqueiroz/rtp-connect/record"
	"github.com/google/go-cmp/cmp"
)

func readDoc(t *testing.T) []byte {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("..", "testdata", "plan.rtp"))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func keywords(r record.Record) []record.Keyword {
	var res []record.Keyword
	for _, x := range record.Flatten(r) {
		res = append(res, x.Keyword())
	}
	return res
}

func TestParse(t *testing.T) {
	doc := readDoc(t)
	plan, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	want := []record.Keyword{
		record.KeywordPlan,
		record.KeywordExtendedPlan,
		record.KeywordPrescription,
		record.KeywordSiteSetup,
		record.KeywordField,
		record.KeywordExtendedField,
		record.KeywordControlPoint,
		record.KeywordControlPoint,
		record.KeywordField,
		record.KeywordField,
		record.KeywordDoseTracking,
		record.KeywordDoseAction,
	}
	if diff := cmp.Diff(want, keywords(plan)); diff != "" {
		t.Errorf("records (-want +got):\n%s", diff)
	}
	if plan.PatientID.String() != "12345" || plan.ExtendedPlan() == nil {
		t.Errorf("plan %q", plan.PatientID)
	}
	rxs := plan.Prescriptions()
	if len(rxs) != 1 {
		t.Fatalf("%d prescriptions", len(rxs))
	}
	rx := rxs[0]
	if rx.RxSiteName.String() != "Bryst høyre" {
		t.Errorf("site %q", rx.RxSiteName)
	}
	if ss := rx.SiteSetup(); ss == nil || ss.PatientOrientation.String() != "HFS" {
		t.Errorf("site setup %v", ss)
	}
	fields := rx.Fields()
	if len(fields) != 3 {
		t.Fatalf("%d fields", len(fields))
	}
	if n := len(fields[0].ControlPoints()); n != 2 {
		t.Errorf("%d control points", n)
	}
	if fields[0].ExtendedField() == nil || fields[1].ExtendedField() != nil {
		t.Errorf("extended fields")
	}
	if dts := plan.DoseTrackings(); len(dts) != 1 || len(dts[0].DoseActions()) != 1 {
		t.Errorf("dose tracking")
	}

	text, err := plan.Text()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(doc, text) {
		t.Errorf("round trip differs:\n%s", cmp.Diff(string(doc), string(text)))
	}
}

func TestParseLineEndings(t *testing.T) {
	doc := readDoc(t)
	want, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	lf := bytes.ReplaceAll(doc, []byte("\r\n"), []byte("\n"))
	lf = bytes.Replace(lf, []byte("\n"), []byte("\n\n\r\n"), 3)
	got, err := ParseString(string(bytes.TrimSuffix(lf, []byte("\n"))))
	if err != nil {
		t.Fatal(err)
	}
	a, b := record.Flatten(want), record.Flatten(got)
	if len(a) != len(b) {
		t.Fatalf("%d records, want %d", len(b), len(a))
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("record %d differs", i)
		}
	}
}

func replaceLine(t *testing.T, doc []byte, n int, line []byte) []byte {
	t.Helper()
	lines := Lines(doc)
	if n > len(lines) {
		t.Fatalf("no line %d", n)
	}
	lines[n-1] = bytes.TrimRight(line, "\r\n")
	return append(bytes.Join(lines, []byte("\r\n")), '\r', '\n')
}

func mkLine(t *testing.T, vals ...string) []byte {
	t.Helper()
	line, err := record.AppendLine(nil, record.Values(vals...))
	if err != nil {
		t.Fatal(err)
	}
	return line
}

func TestParseErrors(t *testing.T) {
	doc := readDoc(t)
	lines := Lines(doc)
	tampered := bytes.Replace(lines[2], []byte("Daily"), []byte("Weekly"), 1)
	cpLine := lines[6]

	tests := []struct {
		name string
		doc  []byte
		line int
		is   []error
	}{
		{
			name: "checksum",
			doc:  replaceLine(t, doc, 3, tampered),
			line: 3,
			is:   []error{crc.ErrMismatch},
		},
		{
			name: "not a plan",
			doc:  bytes.Join(lines[2:], []byte("\r\n")),
			line: 1,
			is:   []error{ErrNotPlan, ErrFormat},
		},
		{
			name: "unknown keyword",
			doc:  replaceLine(t, doc, 4, mkLine(t, "MLC_SHAPE_DEF", "1", "2", "3")),
			line: 4,
			is:   []error{ErrUnknownKeyword, ErrFormat},
		},
		{
			name: "unknown first keyword",
			doc:  mkLine(t, "PLAN", "1", "2", "3"),
			line: 1,
			is:   []error{ErrUnknownKeyword, ErrFormat},
		},
		{
			name: "second plan",
			doc:  replaceLine(t, doc, 12, lines[0]),
			line: 12,
			is:   []error{ErrSecondPlan, ErrFormat},
		},
		{
			name: "orphan control point",
			doc:  replaceLine(t, doc, 3, cpLine),
			line: 3,
			is:   []error{record.ErrHierarchy},
		},
		{
			name: "too short",
			doc:  replaceLine(t, doc, 3, mkLine(t, "RX_DEF", "1")),
			line: 3,
			is:   []error{record.ErrInsufficientElements},
		},
		{
			name: "malformed",
			doc:  replaceLine(t, doc, 2, []byte(`"EXTENDED_PLAN_DEF","a "b"","c","d","1"`)),
			line: 2,
			is:   []error{ErrFormat},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.doc, SkipCRC())
			if tc.name == "checksum" {
				if err != nil {
					t.Fatalf("unexpected error with SkipCRC: %v", err)
				}
				_, err = Parse(tc.doc)
			}
			var lErr *LineErr
			if !errors.As(err, &lErr) {
				t.Fatalf("expected *LineErr, got %v", err)
			}
			if lErr.Line != tc.line {
				t.Errorf("line %d want %d: %v", lErr.Line, tc.line, err)
			}
			for _, e := range tc.is {
				if !errors.Is(err, e) {
					t.Errorf("expected %v in %v", e, err)
				}
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	for _, doc := range []string{"", "\r\n", "\n\n"} {
		_, err := ParseString(doc)
		if !errors.Is(err, ErrNotPlan) || !errors.Is(err, ErrEmpty) {
			t.Errorf("%q: got %v", doc, err)
		}
	}
}

func TestParseRepair(t *testing.T) {
	doc := replaceLine(t, readDoc(t), 2, []byte(`"EXTENDED_PLAN_DEF","ISO8859-1","Alderson "Tangmam"","Phantom","1"`))
	logger, buf := bufLogger()
	plan, err := Parse(doc, SkipCRC(), Repair(), WithLogger(logger))
	if err != nil {
		t.Fatal(err)
	}
	if got := plan.ExtendedPlan().Fullname.String(); got != "Alderson 'Tangmam'" {
		t.Errorf("fullname %q", got)
	}
	if !strings.Contains(buf.String(), "repair") {
		t.Errorf("repair not logged: %q", buf.String())
	}
}

func TestLines(t *testing.T) {
	got := Lines([]byte("a\r\nb\n\nc"))
	want := []string{"a", "b", "", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %q", got)
	}
	for i := range want {
		if string(got[i]) != want[i] {
			t.Errorf("%d: %q", i, got[i])
		}
	}
}
