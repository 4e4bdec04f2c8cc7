package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type tokSummary struct {
	Type TokenType
	S    string
}

func summarize(toks []Token) []tokSummary {
	res := make([]tokSummary, len(toks))
	for i := range toks {
		res[i] = tokSummary{Type: toks[i].Type, S: toks[i].String()}
	}
	return res
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []tokSummary
	}{
		{
			name: "quoted",
			in:   `"RX_DEF","1","Prostate","123"`,
			want: []tokSummary{{TString, "RX_DEF"}, {TString, "1"}, {TString, "Prostate"}, {TString, "123"}},
		},
		{
			name: "empty and null",
			in:   `"A","",,"B"`,
			want: []tokSummary{{TString, "A"}, {TString, ""}, {TNull, ""}, {TString, "B"}},
		},
		{
			name: "trailing null",
			in:   `"A",`,
			want: []tokSummary{{TString, "A"}, {TNull, ""}},
		},
		{
			name: "bare",
			in:   `"A",12,"B"`,
			want: []tokSummary{{TString, "A"}, {TBare, "12"}, {TString, "B"}},
		},
		{
			name: "escaped quote",
			in:   `"A","say ""hi""","B"`,
			want: []tokSummary{{TString, "A"}, {TString, `say "hi"`}, {TString, "B"}},
		},
		{
			name: "comma inside quotes",
			in:   `"A","x,y"`,
			want: []tokSummary{{TString, "A"}, {TString, "x,y"}},
		},
		{
			name: "crlf",
			in:   "\"A\",\"B\"\r\n",
			want: []tokSummary{{TString, "A"}, {TString, "B"}},
		},
		{
			name: "lone comma",
			in:   ",",
			want: []tokSummary{{TNull, ""}, {TNull, ""}},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := Tokenize([]byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, summarize(toks)); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize([]byte("\r\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(toks) != 0 {
		t.Errorf("got %d tokens for an empty line", len(toks))
	}
}

var malformed = []string{
	`"A","B`,
	`"A","B"x,"C"`,
	`"A", "B"`,
	`"A",B"C`,
}

func TestTokenizeMalformed(t *testing.T) {
	for i, line := range malformed {
		_, err := Tokenize([]byte(line))
		if err == nil {
			t.Errorf("%d: expected error for %q", i, line)
			continue
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%d: expected format error, got %v", i, err)
		}
		var tkErr *TokenizeErr
		if !errors.As(err, &tkErr) {
			t.Errorf("%d: expected *TokenizeErr, got %T", i, err)
		}
	}
}

func TestTokenizeRepair(t *testing.T) {
	toks, err := Tokenize([]byte(`"FIELD_DEF","1","Ant "boost"","123"`), Repair(true))
	if err != nil {
		t.Fatal(err)
	}
	want := []tokSummary{{TString, "FIELD_DEF"}, {TString, "1"}, {TString, "Ant 'boost'"}, {TString, "123"}}
	if diff := cmp.Diff(want, summarize(toks)); diff != "" {
		t.Errorf("repaired tokens mismatch (-want +got):\n%s", diff)
	}
	for _, line := range malformed {
		if _, err := Tokenize([]byte(line), Repair(true)); err != nil {
			t.Errorf("repair failed for %q: %v", line, err)
		}
	}
}

func TestTokenizeLatin1(t *testing.T) {
	line := []byte{'"', 'V', 0xe6, 'r', 'n', 'e', 's', '"', ',', '"', 'H', 0xf8, 'y', 'r', 'e', ' ', 0xc5, '"'}
	toks, err := Tokenize(line)
	if err != nil {
		t.Fatal(err)
	}
	if got := toks[0].String(); got != "Værnes" {
		t.Errorf("got %q", got)
	}
	if got := toks[1].String(); got != "Høyre Å" {
		t.Errorf("got %q", got)
	}
	enc, err := Encode(toks[1].String())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(line[10:17], enc); diff != "" {
		t.Errorf("latin1 round trip (-want +got):\n%s", diff)
	}
}

func TestEncodeUnrepresentable(t *testing.T) {
	if _, err := Encode("dose ≥ 2 Gy"); !errors.Is(err, ErrCharset) {
		t.Errorf("expected charset error, got %v", err)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "plain", `a "quoted" word`, `""`, "x,y"} {
		line := Quote([]byte(s))
		toks, err := Tokenize(line)
		if err != nil {
			t.Fatalf("%q: %v", s, err)
		}
		if len(toks) != 1 || toks[0].String() != s || toks[0].Type != TString {
			t.Errorf("round trip of %q gave %v", s, summarize(toks))
		}
	}
}
