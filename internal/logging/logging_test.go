package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel("info")

	SetLevel("warn")
	Infof("hidden %d", 1)
	Warnf("shown %d", 2)
	Errorf("100%% literal")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "[WARN] shown 2") {
		t.Errorf("expected warn line, got %q", out)
	}
	if !strings.Contains(out, "[ERROR] 100%% literal") {
		t.Errorf("message without args should be printed verbatim, got %q", out)
	}
}

func TestSetLevel_Unknown(t *testing.T) {
	defer SetLevel("info")
	SetLevel("debug")
	if SetLevel("loud") {
		t.Error("expected unknown level to be rejected")
	}
	if GetLevel() != LevelDebug {
		t.Errorf("level should be unchanged, got %v", GetLevel())
	}
}
