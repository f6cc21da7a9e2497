package registry

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/leofalp/entitylens/internal/jsonschema"
	"github.com/leofalp/entitylens/providers/ai"
)

// Registry resolves provider names to backends.
type Registry struct {
	backends   map[ProviderName]Backend
	httpClient *http.Client
	repair     bool
}

// Option configures a Registry.
type Option func(*Registry)

// WithBackend replaces the backend registered for b.Name.
func WithBackend(b Backend) Option {
	return func(r *Registry) {
		r.backends[b.Name] = b
	}
}

// WithHTTPClient sets the HTTP client handed to every provider.
func WithHTTPClient(client *http.Client) Option {
	return func(r *Registry) {
		r.httpClient = client
	}
}

// WithRepair makes every backend accept near-JSON replies. Off by default:
// a malformed reply is an error.
func WithRepair(enabled bool) Option {
	return func(r *Registry) {
		r.repair = enabled
	}
}

// New returns a registry holding DefaultBackends, adjusted by opts.
func New(opts ...Option) *Registry {
	r := &Registry{backends: DefaultBackends()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the backend for name.
func (r *Registry) Lookup(name ProviderName) (Backend, error) {
	b, ok := r.backends[name]
	if !ok {
		return Backend{}, &UnsupportedProviderError{Name: string(name)}
	}
	if r.repair {
		b.Repair = true
	}
	if r.httpClient != nil && b.New != nil {
		build, client := b.New, r.httpClient
		b.New = func() ai.Provider { return build().WithHttpClient(client) }
	}
	return b, nil
}

// Complete looks up name and runs Backend.Complete.
func (r *Registry) Complete(ctx context.Context, name ProviderName, apiKey, prompt string, schema *jsonschema.Schema) (json.RawMessage, error) {
	b, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return b.Complete(ctx, apiKey, prompt, schema)
}
