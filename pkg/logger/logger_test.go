package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{DEBUG, "DEBUG"},
		{INFO, "INFO"},
		{WARN, "WARN"},
		{ERROR, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", DEBUG, false},
		{"INFO", INFO, false},
		{" warn ", WARN, false},
		{"warning", WARN, false},
		{"Error", ERROR, false},
		{"verbose", INFO, true},
		{"", INFO, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: WARN, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN should be suppressed, got:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("WARN and ERROR should be logged, got:\n%s", out)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf})

	log.Info("module generated", "module", "service_coordinator", "artifacts", 2)

	line := buf.String()
	if !strings.Contains(line, "[INFO]") {
		t.Errorf("expected level marker in %q", line)
	}
	if !strings.Contains(line, "module generated") {
		t.Errorf("expected message in %q", line)
	}
	// field keys render sorted
	if !strings.Contains(line, "artifacts=2 module=service_coordinator") {
		t.Errorf("expected sorted key=value fields in %q", line)
	}
}

func TestTextFormatQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf})

	log.Info("done", "detail", "two words")

	if !strings.Contains(buf.String(), `detail="two words"`) {
		t.Errorf("expected quoted value, got %q", buf.String())
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithConfig(Config{Level: INFO, Output: &buf, Format: "json"})

	log.Info("module generated", "module", "task_monitor")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if entry["level"] != "INFO" {
		t.Errorf("expected level INFO, got %v", entry["level"])
	}
	if entry["msg"] != "module generated" {
		t.Errorf("expected msg, got %v", entry["msg"])
	}
	if entry["module"] != "task_monitor" {
		t.Errorf("expected module field, got %v", entry["module"])
	}
	if _, ok := entry["ts"]; !ok {
		t.Error("expected a ts field")
	}
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithConfig(Config{Level: INFO, Output: &buf})

	child := base.WithField("component", "protogen")
	grandchild := child.WithFields("module", "service_coordinator")

	grandchild.Info("generating")

	line := buf.String()
	if !strings.Contains(line, "component=protogen") {
		t.Errorf("expected inherited field in %q", line)
	}
	if !strings.Contains(line, "module=service_coordinator") {
		t.Errorf("expected child field in %q", line)
	}

	// the parent logger is not mutated
	buf.Reset()
	base.Info("plain")
	if strings.Contains(buf.String(), "component=") {
		t.Errorf("parent logger gained fields: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	log := New()
	if log.GetLevel() != INFO {
		t.Errorf("default level should be INFO, got %v", log.GetLevel())
	}
	if log.IsDebugEnabled() {
		t.Error("debug should be disabled at INFO")
	}

	log.SetLevel(DEBUG)
	if !log.IsDebugEnabled() {
		t.Error("debug should be enabled after SetLevel(DEBUG)")
	}
}
