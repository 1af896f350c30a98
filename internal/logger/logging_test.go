package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"INFO", log.InfoLevel},
		{" warn ", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"", log.WarnLevel},
		{"loud", log.WarnLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestSetLevel(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	if got := SetLevel("info", false, false); got != log.InfoLevel {
		t.Errorf("SetLevel(info) = %v", got)
	}
	if got := SetLevel("info", true, true); got != log.DebugLevel {
		t.Errorf("verbose should win, got %v", got)
	}
	if got := SetLevel("debug", false, true); got != log.ErrorLevel {
		t.Errorf("quiet should win over config, got %v", got)
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := output
	SetOutput(&buf)
	defer SetOutput(prev)

	l := NewWithConfig("afd", log.InfoLevel, false, false, log.TextFormatter)
	l.Info("loaded", "rows", 3)

	if !strings.Contains(buf.String(), "loaded") || !strings.Contains(buf.String(), "rows=3") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}
