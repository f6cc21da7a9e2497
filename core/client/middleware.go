package client

import (
	"context"
	"encoding/json"

	"github.com/leofalp/entitylens/core/registry"
	"github.com/leofalp/entitylens/internal/jsonschema"
)

// Call is one completion request as seen by a Completer.
type Call struct {
	Provider registry.ProviderName
	APIKey   string
	Prompt   string
	Schema   *jsonschema.Schema
}

// Completer turns a Call into the JSON object produced by the model.
type Completer interface {
	Complete(ctx context.Context, call Call) (json.RawMessage, error)
}

// CompleterFunc adapts a function to the Completer interface.
type CompleterFunc func(ctx context.Context, call Call) (json.RawMessage, error)

// Complete calls f.
func (f CompleterFunc) Complete(ctx context.Context, call Call) (json.RawMessage, error) {
	return f(ctx, call)
}

// Middleware intercepts completion calls. Each Middleware receives the next
// Completer in the chain and returns one that wraps it.
type Middleware func(next Completer) Completer

// Chain wraps base with middlewares. The first middleware in the slice is the
// outermost wrapper, i.e. the first to execute on an incoming call.
func Chain(base Completer, middlewares ...Middleware) Completer {
	chain := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		chain = middlewares[i](chain)
	}
	return chain
}
