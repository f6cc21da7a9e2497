package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/leofalp/entitylens/core/client"
)

// slow returns a Completer that waits for d or the context, whichever ends first.
func slow(d time.Duration) client.Completer {
	return client.CompleterFunc(func(ctx context.Context, _ client.Call) (json.RawMessage, error) {
		select {
		case <-time.After(d):
			return json.RawMessage(`{}`), nil
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	})
}

// TestTimeoutMiddleware_CompletesBeforeTimeout verifies a fast completer
// returns its result.
func TestTimeoutMiddleware_CompletesBeforeTimeout(t *testing.T) {
	mw := NewTimeoutMiddleware(time.Second)
	raw, err := mw(slow(0)).Complete(context.Background(), client.Call{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(raw) != `{}` {
		t.Errorf("unexpected result %s", raw)
	}
}

// TestTimeoutMiddleware_Exceeded verifies a stalled completer is cut off with
// context.DeadlineExceeded.
func TestTimeoutMiddleware_Exceeded(t *testing.T) {
	mw := NewTimeoutMiddleware(20 * time.Millisecond)

	start := time.Now()
	_, err := mw(slow(5*time.Second)).Complete(context.Background(), client.Call{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if time.Since(start) > 2*time.Second {
		t.Error("timeout did not interrupt the call")
	}
}

// TestTimeoutMiddleware_ShorterParentDeadline verifies the caller's shorter
// deadline wins.
func TestTimeoutMiddleware_ShorterParentDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	mw := NewTimeoutMiddleware(time.Minute)
	_, err := mw(slow(5*time.Second)).Complete(ctx, client.Call{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}
