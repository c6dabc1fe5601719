package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestComponentPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := Component(New(&buf, false), "store")
	l.Info("entry added", "id", "abc")

	out := buf.String()
	for _, want := range []string{"ledger/store", "entry added", "id=abc"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line missing %q: %q", want, out)
		}
	}
}

func TestDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug written at info level: %q", buf.String())
	}

	New(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug missing at debug level: %q", buf.String())
	}
}

func TestOpenAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	for _, msg := range []string{"first", "second"} {
		l, c, err := Open(Config{Path: path})
		if err != nil {
			t.Fatalf("Open: %v", err)
		}
		l.Info(msg)
		c.Close()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file = %q", data)
	}
}

func TestOpenBadPath(t *testing.T) {
	if _, _, err := Open(Config{Path: filepath.Join(t.TempDir(), "missing", "x.log")}); err == nil {
		t.Error("expected an error")
	}
}
