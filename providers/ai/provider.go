package ai

import (
	"context"
	"errors"
	"net/http"
)

// ErrMissingAPIKey is returned by providers that have no API key configured.
// It is reported before any request is sent.
var ErrMissingAPIKey = errors.New("API key is not provided")

// Provider is the core interface that every LLM provider implementation must
// satisfy. It covers one synchronous request: authentication, endpoint
// configuration, message dispatch and response interpretation.
type Provider interface {
	// Name returns the provider identifier used in logs and span attributes.
	Name() string

	// SendMessage sends a chat request to the provider and returns the
	// completed response. Returns an error if the provider call fails,
	// the context is cancelled, or the response cannot be decoded.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)

	// WithAPIKey sets the API key used for authenticating requests.
	WithAPIKey(apiKey string) Provider

	// WithBaseURL overrides the default base URL for API requests.
	WithBaseURL(baseURL string) Provider

	// WithHttpClient sets the HTTP client used for outbound requests.
	WithHttpClient(httpClient *http.Client) Provider
}
