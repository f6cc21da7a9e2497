package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	// ErrNotObject is returned when the reply decodes to JSON that is not an object.
	ErrNotObject = errors.New("response is not a JSON object")
	// ErrEmpty is returned for empty content unless WithEmptyAsObject is set.
	ErrEmpty = errors.New("response is empty")
)

type options struct {
	emptyAsObject bool
	repair        bool
}

// Option adjusts how JSONObject treats a reply.
type Option func(*options)

// WithEmptyAsObject maps empty (or whitespace only) content to "{}".
func WithEmptyAsObject() Option {
	return func(o *options) {
		o.emptyAsObject = true
	}
}

// WithRepair lets JSONObject repair near-JSON, cut prose around the object
// and unwrap schema envelopes instead of failing.
func WithRepair() Option {
	return func(o *options) {
		o.repair = true
	}
}

// JSONObject returns the JSON object in a model reply.
//
// Markdown fences are always stripped. Without WithRepair the remaining
// content must decode as exactly one object and is returned unchanged.
// Arrays, strings and other non-object values are rejected with ErrNotObject.
func JSONObject(content string, opts ...Option) (json.RawMessage, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	content = StripCodeFence(strings.TrimSpace(content))
	if content == "" {
		if o.emptyAsObject {
			return json.RawMessage("{}"), nil
		}
		return nil, ErrEmpty
	}

	if !o.repair {
		if _, err := decodeObject(content); err != nil {
			return nil, fmt.Errorf("failed to parse response as JSON: %w", err)
		}
		return json.RawMessage(content), nil
	}
	return repairObject(content)
}

func repairObject(content string) (json.RawMessage, error) {
	data, err := decodeCandidate(content)
	if err != nil {
		// prose around the object, e.g. "Here is the result: {...}"
		start, end := strings.IndexByte(content, '{'), strings.LastIndexByte(content, '}')
		if content[0] == '[' || start <= 0 || end <= start {
			return nil, err
		}
		var candidateErr error
		if data, candidateErr = decodeCandidate(content[start : end+1]); candidateErr != nil {
			return nil, err
		}
	}

	unwrapped, ok := recursiveUnwrap(data).(map[string]any)
	if !ok {
		unwrapped = data
	}
	out, err := json.Marshal(unwrapped)
	if err != nil {
		return nil, fmt.Errorf("failed to encode response: %w", err)
	}
	return out, nil
}

// decodeCandidate decodes content as an object, repairing it when needed.
func decodeCandidate(content string) (map[string]any, error) {
	data, err := decodeObject(content)
	if err == nil {
		return data, nil
	}
	repaired, repairErr := jsonrepair.JSONRepair(content)
	if repairErr != nil {
		return nil, fmt.Errorf("failed to parse response as JSON and failed to repair it: parse error: %w, repair error: %v", err, repairErr)
	}
	data, err = decodeObject(repaired)
	if err != nil {
		return nil, fmt.Errorf("failed to parse repaired JSON: %w", err)
	}
	return data, nil
}

// As normalizes content with JSONObject and decodes it into T.
func As[T any](content string, opts ...Option) (T, error) {
	var result T
	raw, err := JSONObject(content, opts...)
	if err != nil {
		return result, err
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return result, fmt.Errorf("failed to unmarshal response as %T: %w", result, err)
	}
	return result, nil
}

// StripCodeFence removes a surrounding markdown code fence (``` or ```json).
// Content without a leading fence is returned unchanged.
func StripCodeFence(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	body := strings.TrimPrefix(content, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// drop the info string ("json", "JSON", ...)
		body = body[nl+1:]
	} else {
		body = strings.TrimLeft(body, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	}
	body = strings.TrimSpace(body)
	body = strings.TrimSuffix(body, "```")
	return strings.TrimSpace(body)
}

func decodeObject(content string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(content)))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("unexpected trailing content after JSON value")
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w (got %s)", ErrNotObject, kindOf(value))
	}
	return obj, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// schemaTypes are the type names a model echoes when it mirrors the schema.
var schemaTypes = map[string]bool{
	"string": true, "number": true, "integer": true, "boolean": true,
	"object": true, "array": true, "null": true,
}

// isEnvelope reports whether v is exactly {"type": <schema type>, "value": ...}.
func isEnvelope(v map[string]any) bool {
	if len(v) != 2 {
		return false
	}
	if _, ok := v["value"]; !ok {
		return false
	}
	typ, ok := v["type"].(string)
	return ok && schemaTypes[strings.ToLower(typ)]
}

// recursiveUnwrap replaces {"type": ..., "value": ...} envelopes with their value.
//
// Example input:
//
//	{"resolved_name": {"type": "string", "value": "Glucose"}}
//
// Example output:
//
//	{"resolved_name": "Glucose"}
func recursiveUnwrap(data any) any {
	switch v := data.(type) {
	case map[string]any:
		if isEnvelope(v) {
			return recursiveUnwrap(v["value"])
		}
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[key] = recursiveUnwrap(val)
		}
		return result

	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = recursiveUnwrap(val)
		}
		return result

	default:
		return data
	}
}
