package utils

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{name: "shorter than limit", input: "abc", maxLen: 5, want: "abc"},
		{name: "exact limit", input: "abcde", maxLen: 5, want: "abcde"},
		{name: "longer than limit", input: "abcdefgh", maxLen: 3, want: "abc... (truncated, total: 8 chars)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

// TestTruncateString_DefaultLimit verifies that a non-positive limit falls
// back to DefaultMaxStringLength instead of truncating everything.
func TestTruncateString_DefaultLimit(t *testing.T) {
	short := strings.Repeat("x", 10)
	if got := TruncateString(short, 0); got != short {
		t.Errorf("expected short string untouched, got %q", got)
	}

	long := strings.Repeat("y", DefaultMaxStringLength+1)
	got := TruncateString(long, -1)
	if !strings.HasSuffix(got, "(truncated, total: 501 chars)") {
		t.Errorf("expected default truncation suffix, got %q", got[len(got)-40:])
	}
}

func TestJSONToString(t *testing.T) {
	if got := JSONToString(map[string]int{"a": 1}); got != `{"a":1}` {
		t.Errorf("compact: got %q", got)
	}
	if got := JSONToString(map[string]int{"a": 1}, true); got != "{\n  \"a\": 1\n}" {
		t.Errorf("indented: got %q", got)
	}
	if got := JSONToString(make(chan int)); !strings.HasPrefix(got, `{"error": "failed to marshal to JSON`) {
		t.Errorf("unmarshalable: got %q", got)
	}
}
