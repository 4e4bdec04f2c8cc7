package record

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func readLine(t *testing.T, name string) []byte {
	t.Helper()
	d, err := os.ReadFile(filepath.Join("..", "testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return d
}

// mkLine builds a well formed line from vals.
func mkLine(t *testing.T, vals ...string) []byte {
	t.Helper()
	line, err := AppendLine(nil, Values(vals...))
	if err != nil {
		t.Fatal(err)
	}
	return line
}

// indexValues returns kw followed by n values "0", "1", ...
func indexValues(kw Keyword, n int) []string {
	res := []string{string(kw)}
	for i := range n {
		res = append(res, strconv.Itoa(i))
	}
	return res
}

type tree struct {
	plan  *Plan
	rx    *Prescription
	field *Field
	dose  *DoseTracking
}

func newTree(t *testing.T) *tree {
	t.Helper()
	tr := &tree{plan: NewPlan()}
	var err error
	if tr.rx, err = NewPrescription(tr.plan); err != nil {
		t.Fatal(err)
	}
	if tr.field, err = NewField(tr.rx); err != nil {
		t.Fatal(err)
	}
	if tr.dose, err = NewDoseTracking(tr.plan); err != nil {
		t.Fatal(err)
	}
	return tr
}

// parentFor returns a record in tr that can own a record of type s.
func (tr *tree) parentFor(s *Schema) Record {
	switch s.Parent {
	case KeywordPlan:
		return tr.plan
	case KeywordPrescription:
		return tr.rx
	case KeywordField:
		return tr.field
	case KeywordDoseTracking:
		return tr.dose
	}
	return nil
}

func bufLogger() (*slog.Logger, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}
