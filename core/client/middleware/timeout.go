package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/leofalp/entitylens/core/client"
)

// NewTimeoutMiddleware bounds every completion with context.WithTimeout. A
// shorter deadline already on the caller's context still wins.
func NewTimeoutMiddleware(timeout time.Duration) client.Middleware {
	return func(next client.Completer) client.Completer {
		return client.CompleterFunc(func(ctx context.Context, call client.Call) (json.RawMessage, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			return next.Complete(ctx, call)
		})
	}
}
