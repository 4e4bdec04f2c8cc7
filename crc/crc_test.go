package crc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
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

func TestChecksumEmpty(t *testing.T) {
	if got := Checksum(nil); got != Seed {
		t.Errorf("got %d want %d", got, Seed)
	}
	if Seed != 1313 {
		t.Errorf("seed is %d", Seed)
	}
}

func TestChecksumLines(t *testing.T) {
	tests := []struct {
		file string
		want uint16
	}{
		{"plan.line", 61220},
		{"control_point.line", 7923},
		{"control_point_extra.line", 16366},
	}
	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			line := readLine(t, tc.file)
			content, _, ok := Split(bytes.TrimRight(line, "\r\n"))
			if !ok {
				t.Fatal("no separator")
			}
			if got := Checksum(content); got != tc.want {
				t.Errorf("got %d want %d", got, tc.want)
			}
			if err := Verify(line); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestUpdateIncremental(t *testing.T) {
	line := readLine(t, "plan.line")
	content, _, _ := Split(bytes.TrimRight(line, "\r\n"))
	c := Seed
	for i := 0; i < len(content); i += 7 {
		c = Update(c, content[i:min(i+7, len(content))])
	}
	if c != Checksum(content) {
		t.Errorf("incremental %d, whole %d", c, Checksum(content))
	}
}

func TestField(t *testing.T) {
	if got := string(Field(Checksum(nil))); got != `"1313"` {
		t.Errorf("got %s", got)
	}
	if got := string(AppendField([]byte(`"A",`), 7923)); got != `"A","7923"` {
		t.Errorf("got %s", got)
	}
}

func TestVerifyMismatch(t *testing.T) {
	line := readLine(t, "plan.line")
	bad := bytes.Replace(line, []byte("ALDERSON"), []byte("ANDERSON"), 1)
	err := Verify(bad)
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("expected mismatch, got %v", err)
	}
	var mErr *MismatchErr
	if !errors.As(err, &mErr) {
		t.Fatalf("expected *MismatchErr, got %T", err)
	}
	if mErr.Stored != "61220" {
		t.Errorf("stored %q", mErr.Stored)
	}
	for _, in := range []string{`"PLAN_DEF","x"`, `"PLAN_DEF",`, `"PLAN_DEF",""`, `no separator`} {
		if err := Verify([]byte(in)); !errors.Is(err, ErrMismatch) {
			t.Errorf("%q: expected mismatch, got %v", in, err)
		}
	}
}
