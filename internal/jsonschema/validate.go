package jsonschema

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/kaptinlin/jsonschema"
)

// Validator wraps a compiled JSON Schema.
type Validator struct {
	schema *jsonschema.Schema
}

// Compile converts s into standard JSON Schema and compiles it.
func Compile(s *Schema) (*Validator, error) {
	if s == nil {
		return nil, fmt.Errorf("schema is nil")
	}

	schemaBytes, err := json.Marshal(s.document())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiled, err := jsonschema.NewCompiler().Compile(schemaBytes)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON Schema: %w", err)
	}

	return &Validator{schema: compiled}, nil
}

// Validate checks decoded JSON data (maps, slices, scalars) against the
// schema. All violations are returned together as a *multierror.Error.
func (v *Validator) Validate(data any) error {
	result := v.schema.Validate(data)
	if result.IsValid() {
		return nil
	}

	keys := make([]string, 0, len(result.Errors))
	for key := range result.Errors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var merr *multierror.Error
	for _, key := range keys {
		merr = multierror.Append(merr, fmt.Errorf("%s: %s", key, result.Errors[key].Message))
	}
	if merr == nil {
		return fmt.Errorf("validation failed")
	}
	return merr
}

// ValidateJSON decodes raw and validates it.
func (v *Validator) ValidateJSON(raw []byte) error {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return v.Validate(data)
}

// document renders s as a standard JSON Schema map. "nullable" becomes a
// type union with "null" since draft 2020-12 has no nullable keyword.
func (s *Schema) document() map[string]any {
	doc := map[string]any{}
	if s.Type != "" {
		if s.Nullable {
			doc["type"] = []string{s.Type, "null"}
		} else {
			doc["type"] = s.Type
		}
	}
	if s.Description != "" {
		doc["description"] = s.Description
	}
	if len(s.Required) > 0 {
		doc["required"] = s.Required
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.document()
		}
		doc["properties"] = props
	}
	if s.Items != nil {
		doc["items"] = s.Items.document()
	}
	if len(s.Enum) > 0 {
		enum := s.Enum
		if s.Nullable {
			enum = append(append([]any(nil), s.Enum...), nil)
		}
		doc["enum"] = enum
	}
	if s.AdditionalProperties != nil {
		doc["additionalProperties"] = s.AdditionalProperties
	}
	return doc
}
