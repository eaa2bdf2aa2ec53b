package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew_EmptyPathDisabled(t *testing.T) {
	l, c, err := New("", "info")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()
	if l.GetLevel() != zerolog.Disabled {
		t.Fatalf("expected disabled logger, got %s", l.GetLevel())
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "shoplist.log")
	l, c, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cl := Component(l, "store")
	cl.Info().Int("listings", 2).Msg("saved")
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	for _, want := range []string{`"component":"store"`, `"listings":2`, `"message":"saved"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %s in log; got %s", want, data)
		}
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestNewWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, zerolog.WarnLevel)
	l.Info().Msg("hidden")
	l.Warn().Msg("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}
