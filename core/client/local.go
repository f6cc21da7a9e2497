package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leofalp/entitylens/core/dispatch"
)

// LocalCompleter calls the provider in-process.
type LocalCompleter struct {
	backends   dispatch.Completer
	defaultKey string
}

// NewLocalCompleter returns a completer over backends (usually a
// *registry.Registry). defaultKey is used when a call carries no key.
func NewLocalCompleter(backends dispatch.Completer, defaultKey string) *LocalCompleter {
	return &LocalCompleter{backends: backends, defaultKey: defaultKey}
}

// Complete sends the call with the call's key or the default key.
func (l *LocalCompleter) Complete(ctx context.Context, call Call) (json.RawMessage, error) {
	key := call.APIKey
	if key == "" {
		key = l.defaultKey
	}
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	raw, err := l.backends.Complete(ctx, call.Provider, key, call.Prompt, call.Schema)
	if err != nil {
		return nil, fmt.Errorf("failed to get data from %s: %w", call.Provider, err)
	}
	return raw, nil
}
