package debug

import (
	"io"
	"os"
	"testing"
)

func captureStderr(t *testing.T, f func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	old := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = old }()
	f()
	w.Close()
	d, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestLogAny(t *testing.T) {
	got := captureStderr(t, func() {
		LogAny(map[string]int{"beams": 2})
		LogAny(func() {})
	})
	if want := "{\"beams\":2}\n"; len(got) < len(want) || got[:len(want)] != want {
		t.Errorf("got %q", got)
	}
	if got[len(got)-1] != '\n' {
		t.Errorf("unmarshalable value not logged on its own line: %q", got)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("RTP_DEBUG_TEST", "1")
	if !boolEnv("RTP_DEBUG_TEST") {
		t.Error("1 should be true")
	}
	t.Setenv("RTP_DEBUG_TEST", "nope")
	if boolEnv("RTP_DEBUG_TEST") {
		t.Error("unparsable value should be false")
	}
	if boolEnv("RTP_DEBUG_UNSET_FOR_TEST") {
		t.Error("unset should be false")
	}
}
