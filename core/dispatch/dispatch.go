package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/leofalp/entitylens/core/registry"
	"github.com/leofalp/entitylens/internal/jsonschema"
	"github.com/leofalp/entitylens/internal/metrics"
	"github.com/leofalp/entitylens/providers/observability"
)

// ProxyRequest is the body of POST /api/ai/proxy.
type ProxyRequest struct {
	Provider       string          `json:"provider"`
	APIKey         string          `json:"apiKey"`
	Prompt         string          `json:"prompt"`
	ResponseSchema json.RawMessage `json:"responseSchema,omitempty"`
}

// Completer turns a prompt into a JSON object using the named provider.
// *registry.Registry implements it.
type Completer interface {
	Complete(ctx context.Context, name registry.ProviderName, apiKey, prompt string, schema *jsonschema.Schema) (json.RawMessage, error)
}

// Dispatcher serves proxy requests.
type Dispatcher struct {
	completer Completer
	metrics   metrics.Recorder
	observer  observability.Provider
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics sets the metrics recorder. Defaults to metrics.Default().
func WithMetrics(r metrics.Recorder) Option {
	return func(d *Dispatcher) {
		d.metrics = r
	}
}

// WithObserver sets the observer used when the context carries none.
func WithObserver(o observability.Provider) Option {
	return func(d *Dispatcher) {
		d.observer = o
	}
}

// New returns a Dispatcher that completes through c.
func New(c Completer, opts ...Option) *Dispatcher {
	d := &Dispatcher{completer: c}
	for _, opt := range opts {
		opt(d)
	}
	if d.metrics == nil {
		d.metrics = metrics.Default()
	}
	return d
}

// UnsupportedMessage is the client-facing error for an unknown provider. A
// request without a provider field reads "Provider undefined ...".
func UnsupportedMessage(provider string) string {
	if provider == "" {
		provider = "undefined"
	}
	return fmt.Sprintf("Provider %s not supported via proxy.", provider)
}

// Dispatch validates the provider name and performs one completion. Unknown
// providers fail with an error matching registry.ErrUnsupportedProvider
// before anything is sent.
func (d *Dispatcher) Dispatch(ctx context.Context, req ProxyRequest) (result json.RawMessage, err error) {
	observer := observability.ObserverFromContext(ctx)
	if observer == nil {
		observer = d.observer
	}

	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanProxyDispatch,
			observability.String(observability.AttrLLMProvider, req.Provider),
			observability.Int(observability.AttrPromptLength, len(req.Prompt)),
		)
		defer span.End()
		ctx = observability.ContextWithObserver(ctx, observer)
	}

	name, parseErr := registry.ParseProviderName(req.Provider)

	done := metrics.TimeProxy(d.metrics, registry.MetricLabel(req.Provider))
	defer func() {
		switch {
		case err == nil:
			done(metrics.OutcomeSuccess)
		case errors.Is(err, registry.ErrUnsupportedProvider):
			done(metrics.OutcomeUnsupported)
		default:
			done(metrics.OutcomeError)
		}
		if span != nil {
			if err != nil {
				span.RecordError(err)
				span.SetStatus(observability.StatusError, err.Error())
			} else {
				span.SetStatus(observability.StatusOK, "")
			}
		}
	}()

	if parseErr != nil {
		if observer != nil {
			observer.Warn(ctx, "Rejected proxy request for unsupported provider",
				observability.String(observability.AttrLLMProvider, req.Provider),
			)
		}
		return nil, parseErr
	}

	schema, err := DecodeSchema(req.ResponseSchema)
	if err != nil {
		return nil, err
	}

	result, err = d.completer.Complete(ctx, name, req.APIKey, req.Prompt, schema)
	if err != nil {
		if observer != nil {
			observer.Error(ctx, "Proxy completion failed",
				observability.String(observability.AttrLLMProvider, req.Provider),
				observability.Error(err),
			)
		}
		return nil, err
	}

	if observer != nil {
		observer.Info(ctx, "Proxy completion succeeded",
			observability.String(observability.AttrLLMProvider, req.Provider),
			observability.Int(observability.AttrHTTPResponseBodySize, len(result)),
		)
	}
	return result, nil
}

// DecodeSchema decodes a response schema sent by a client. Absent or null
// input yields nil. Upper-case type names (Gemini's dialect) are lower-cased.
func DecodeSchema(raw json.RawMessage) (*jsonschema.Schema, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(trimmed, &schema); err != nil {
		return nil, fmt.Errorf("invalid responseSchema: %w", err)
	}
	schema.Walk(func(_ string, node *jsonschema.Schema) {
		node.Type = strings.ToLower(node.Type)
	})
	return &schema, nil
}

// StatusFor maps a Dispatch error to the HTTP status and client-facing
// message for the proxy endpoint.
func StatusFor(provider string, err error) (int, string) {
	if errors.Is(err, registry.ErrUnsupportedProvider) {
		return http.StatusBadRequest, UnsupportedMessage(provider)
	}
	msg := err.Error()
	if msg == "" {
		msg = "Internal Server Error"
	}
	return http.StatusInternalServerError, msg
}
