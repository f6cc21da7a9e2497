package slogobs

import (
	"log/slog"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"compact", FormatCompact},
		{" PRETTY ", FormatPretty},
		{"json", FormatJSON},
		{"xml", FormatCompact},
		{"", FormatCompact},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestGetFormatFromEnv(t *testing.T) {
	t.Setenv("ENTITYLENS_LOG_FORMAT", "")
	t.Setenv("LOG_FORMAT", "json")
	if got := GetFormatFromEnv(); got != FormatJSON {
		t.Errorf("expected LOG_FORMAT fallback, got %q", got)
	}

	t.Setenv("ENTITYLENS_LOG_FORMAT", "pretty")
	if got := GetFormatFromEnv(); got != FormatPretty {
		t.Errorf("expected ENTITYLENS_LOG_FORMAT to win, got %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"Error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLogLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLogLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGetLogLevelFromEnv(t *testing.T) {
	t.Setenv("ENTITYLENS_LOG_LEVEL", "debug")
	if got := GetLogLevelFromEnv(); got != slog.LevelDebug {
		t.Errorf("expected DEBUG, got %v", got)
	}
}
