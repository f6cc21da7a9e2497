package parse

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func decodeMap(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var got map[string]any
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("result is not valid JSON: %v (%s)", err, raw)
	}
	return got
}

// TestJSONObject verifies strict decoding: fences are stripped and anything
// that is not exactly one object fails.
func TestJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr bool
	}{
		{
			name:  "plain object",
			input: `{"resolved_name":"Glucose","synonyms":["Dextrose"]}`,
			want:  map[string]any{"resolved_name": "Glucose", "synonyms": []any{"Dextrose"}},
		},
		{
			name:  "surrounding whitespace",
			input: "\n\t {\"a\":1} \n",
			want:  map[string]any{"a": float64(1)},
		},
		{
			name:  "json code fence",
			input: "```json\n{\"a\":\"b\"}\n```",
			want:  map[string]any{"a": "b"},
		},
		{
			name:  "bare code fence",
			input: "```\n{\"a\":\"b\"}\n```",
			want:  map[string]any{"a": "b"},
		},
		{
			name:  "type value data kept",
			input: `{"identifiers":{"type":"CAS","value":"50-99-7"}}`,
			want:  map[string]any{"identifiers": map[string]any{"type": "CAS", "value": "50-99-7"}},
		},
		{
			name:  "null values kept",
			input: `{"identifiers":{"KEGG":null}}`,
			want:  map[string]any{"identifiers": map[string]any{"KEGG": nil}},
		},
		{name: "empty content", input: "", wantErr: true},
		{name: "whitespace only", input: "   \n", wantErr: true},
		{name: "trailing comma", input: `{"a":"b",}`, wantErr: true},
		{name: "single quotes", input: `{'a': 'b'}`, wantErr: true},
		{name: "prose around object", input: `Here is the result: {"a": "b"} Let me know.`, wantErr: true},
		{name: "truncated", input: `{"corrected_name":"Glucose","synonyms":["dextrose"`, wantErr: true},
		{name: "array rejected", input: `[{"a":1}]`, wantErr: true},
		{name: "number rejected", input: `42`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := JSONObject(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("JSONObject() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := decodeMap(t, raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("JSONObject() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestJSONObjectVerbatim verifies a valid reply is returned byte for byte.
func TestJSONObjectVerbatim(t *testing.T) {
	in := `{"resolved_name": "Glucose", "identifiers": {"type": "string", "value": "x"}, "a": 1}`
	raw, err := JSONObject("```json\n" + in + "\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != in {
		t.Errorf("JSONObject() = %s, want %s", raw, in)
	}
}

// TestJSONObjectEmpty verifies empty content fails unless mapped to {}.
func TestJSONObjectEmpty(t *testing.T) {
	if _, err := JSONObject(" "); !errors.Is(err, ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
	raw, err := JSONObject(" ", WithEmptyAsObject())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("JSONObject() = %s, want {}", raw)
	}
}

// TestJSONObjectWithRepair verifies the lenient mode.
func TestJSONObjectWithRepair(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]any
		wantErr bool
	}{
		{
			name:  "trailing comma repaired",
			input: `{"a":"b",}`,
			want:  map[string]any{"a": "b"},
		},
		{
			name:  "single quotes repaired",
			input: `{'a': 'b'}`,
			want:  map[string]any{"a": "b"},
		},
		{
			name:  "prose around object",
			input: `Here is the result: {"a": "b"} Let me know if you need more.`,
			want:  map[string]any{"a": "b"},
		},
		{
			name:  "truncated object closed",
			input: `{"corrected_name":"Glucose","synonyms":["dextrose"`,
			want:  map[string]any{"corrected_name": "Glucose", "synonyms": []any{"dextrose"}},
		},
		{
			name:  "schema envelope unwrapped",
			input: `{"resolved_name":{"type":"string","value":"Glucose"},"ids":[{"type":"STRING","value":"x"}]}`,
			want:  map[string]any{"resolved_name": "Glucose", "ids": []any{"x"}},
		},
		{
			name:  "non-schema type kept",
			input: `{"identifiers":{"type":"CAS","value":"50-99-7"}}`,
			want:  map[string]any{"identifiers": map[string]any{"type": "CAS", "value": "50-99-7"}},
		},
		{
			name:    "array still rejected",
			input:   `[{"a":1}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := JSONObject(tt.input, WithRepair())
			if (err != nil) != tt.wantErr {
				t.Fatalf("JSONObject() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := decodeMap(t, raw); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("JSONObject() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestJSONObjectNotObjectSentinel verifies non-object replies wrap ErrNotObject.
func TestJSONObjectNotObjectSentinel(t *testing.T) {
	_, err := JSONObject(`["a","b"]`)
	if !errors.Is(err, ErrNotObject) {
		t.Errorf("expected ErrNotObject, got %v", err)
	}
}

// TestJSONObjectPreservesLargeNumbers verifies repaired numbers are not
// rounded through float64.
func TestJSONObjectPreservesLargeNumbers(t *testing.T) {
	raw, err := JSONObject(`{"cid":12345678901234567890,}`, WithRepair())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{"cid":12345678901234567890}` {
		t.Errorf("unexpected output: %s", raw)
	}
}

func TestAs(t *testing.T) {
	type entity struct {
		Name string  `json:"resolved_name"`
		KEGG *string `json:"kegg"`
	}

	got, err := As[entity]("```json\n{\"resolved_name\":\"ATP\",\"kegg\":null}\n```")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "ATP" || got.KEGG != nil {
		t.Errorf("unexpected result: %+v", got)
	}

	if _, err := As[entity](`{"resolved_name":5}`); err == nil {
		t.Error("expected type mismatch error")
	}
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"upper case info", "```JSON\n{}\n```", `{}`},
		{"single line", "```json{\"a\":1}```", `{"a":1}`},
		{"unterminated", "```json\n{\"a\":1}", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripCodeFence(tt.input); got != tt.want {
				t.Errorf("StripCodeFence() = %q, want %q", got, tt.want)
			}
		})
	}
}
