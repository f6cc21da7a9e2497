// Package registry maps the closed set of provider names to backends that
// turn a prompt into a JSON object.
//
// Each [Backend] pins the model, token limit, prompt suffix and structured
// output mode for one provider and builds the matching [ai.Provider]. A name
// outside the set is rejected with [ErrUnsupportedProvider] by
// [ParseProviderName] and [Registry.Lookup].
package registry
