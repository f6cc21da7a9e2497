// Package jsonschema holds the declarative response schema sent to model
// providers and validates decoded replies against it.
//
// [Schema] is the wire shape shared by every provider adapter: plain JSON
// Schema keywords plus the OpenAPI "nullable" flag understood by Gemini.
// [Compile] turns a Schema into a [Validator] backed by
// github.com/kaptinlin/jsonschema; nullable types are rewritten to
// ["<type>", "null"] so the two dialects agree.
package jsonschema
