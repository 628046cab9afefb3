package sbklog_test

import (
	"os"
	"testing"

	"github.com/sbk-go/sbk/internal/sbklog"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]sbklog.Level{
		"off":   sbklog.LevelOff,
		"none":  sbklog.LevelOff,
		"ERROR": sbklog.LevelError,
		"debug": sbklog.LevelDebug,
		"":      sbklog.LevelError,
		"bogus": sbklog.LevelError,
	}
	for in, want := range cases {
		if got := sbklog.ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNullLoggerDoesNotPanic(t *testing.T) {
	l := sbklog.Null()
	l.Debug("no-op")
	l.Error("no-op")
}

func TestNewLoggerWritesAtLevel(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "sbklog")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	defer f.Close()

	l := sbklog.New(sbklog.LevelDebug, f)
	l.Debug("kdf step complete")
	l.Error("example failure")

	info, err := f.Stat()
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected log output to be written")
	}
}
