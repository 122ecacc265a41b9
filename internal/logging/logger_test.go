package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"INFO":    log.InfoLevel,
		"warn":    log.WarnLevel,
		"warning": log.WarnLevel,
		"error":   log.ErrorLevel,
		"chatty":  log.InfoLevel,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	logger := New(&out, "warn", "logfmt")

	logger.Info("quiet")
	logger.Warn("loud", "file", "a.json")

	got := out.String()
	if strings.Contains(got, "quiet") {
		t.Errorf("info message logged at warn level: %q", got)
	}
	if !strings.Contains(got, "loud") || !strings.Contains(got, "a.json") {
		t.Errorf("warn message missing: %q", got)
	}
}
