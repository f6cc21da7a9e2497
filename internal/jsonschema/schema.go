package jsonschema

// JSON Schema primitive type names.
const (
	TypeObject  = "object"
	TypeArray   = "array"
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

// Schema represents the structure of the JSON document a provider must return.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of an object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// Nullable marks a value that may be JSON null (OpenAPI dialect)
	Nullable bool `json:"nullable,omitempty"`
	// Enum contains the list of allowed values
	Enum []any `json:"enum,omitempty"`
	// AdditionalProperties controls whether unknown properties are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
}

// String returns a string schema with a description.
func String(description string) *Schema {
	return &Schema{Type: TypeString, Description: description}
}

// NullableString returns a nullable string schema with a description.
func NullableString(description string) *Schema {
	return &Schema{Type: TypeString, Description: description, Nullable: true}
}

// StringArray returns an array-of-strings schema with a description.
func StringArray(description string) *Schema {
	return &Schema{Type: TypeArray, Items: &Schema{Type: TypeString}, Description: description}
}

// Clone returns a deep copy of s.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	if s.Enum != nil {
		out.Enum = append([]any(nil), s.Enum...)
	}
	if s.Properties != nil {
		out.Properties = make(map[string]*Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = prop.Clone()
		}
	}
	out.Items = s.Items.Clone()
	return &out
}

// Walk calls fn for s and every nested schema, depth first. The path is the
// dotted property path ("" for the root, "[]" for array items).
func (s *Schema) Walk(fn func(path string, node *Schema)) {
	s.walk("", fn)
}

func (s *Schema) walk(path string, fn func(string, *Schema)) {
	if s == nil {
		return
	}
	fn(path, s)
	for name, prop := range s.Properties {
		child := name
		if path != "" {
			child = path + "." + name
		}
		prop.walk(child, fn)
	}
	if s.Items != nil {
		s.Items.walk(path+"[]", fn)
	}
}
