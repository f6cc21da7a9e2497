package slogobs

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestHandler_Compact(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatCompact, Level: slog.LevelDebug, Output: &buf}))
	logger.Info("Test message", "key1", "value1", "key2", 42)

	output := buf.String()
	for _, want := range []string{" INFO ", "Test message", " → ", `"key1":"value1"`, `"key2":42`} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
	if strings.Contains(output, "\x1b[") {
		t.Errorf("expected no ANSI codes for a buffer, got: %q", output)
	}
}

func TestHandler_CompactColors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatCompact, Output: &buf, Colors: true}))
	logger.Error("boom")

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("expected ANSI codes when colors are forced, got: %q", buf.String())
	}
}

func TestHandler_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatPretty, Level: slog.LevelDebug, Output: &buf}))
	logger.Warn("Pretty message", "b", 2, "a", 1)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus two attribute lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "WARN") || !strings.Contains(lines[0], "Pretty message") {
		t.Errorf("unexpected header line %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], "├─ a: 1") {
		t.Errorf("expected sorted first attribute, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[2], "└─ b: 2") {
		t.Errorf("expected sorted last attribute, got %q", lines[2])
	}
}

func TestHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Format: FormatJSON, Output: &buf}))
	logger.With("component", "proxy").WithGroup("req").Info("done", "status", 200, "err", errors.New("x"))

	var data map[string]any
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("expected valid JSON line, got %q: %v", buf.String(), err)
	}
	if data["msg"] != "done" || data["level"] != "INFO" {
		t.Errorf("unexpected standard fields: %v", data)
	}
	if data["component"] != "proxy" {
		t.Errorf("expected handler attribute, got %v", data["component"])
	}
	if data["req.status"] != float64(200) {
		t.Errorf("expected grouped attribute req.status, got %v", data)
	}
	if data["req.err"] != "x" {
		t.Errorf("expected error rendered as string, got %v", data["req.err"])
	}
}

func TestHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&HandlerOptions{Level: slog.LevelWarn, Output: &buf}))
	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected INFO to be filtered at WARN level, got %q", buf.String())
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level slog.Level
		want  string
	}{
		{LevelTrace, "TRACE"},
		{slog.LevelDebug, "DEBUG"},
		{slog.LevelInfo, "INFO"},
		{slog.LevelWarn, "WARN"},
		{slog.LevelError, "ERROR"},
		{slog.LevelError + 4, "ERROR"},
	}
	for _, tt := range tests {
		if got := levelString(tt.level); got != tt.want {
			t.Errorf("levelString(%d) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
