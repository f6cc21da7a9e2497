package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/leofalp/entitylens/core/dispatch"
	"github.com/leofalp/entitylens/internal/utils"
)

// ProxyPath is the server route handling proxied completions.
const ProxyPath = "/api/ai/proxy"

// DefaultProxyURL is the server address used when none is configured.
const DefaultProxyURL = "http://localhost:3000"

// ProxyCompleter posts calls to a server's proxy endpoint.
type ProxyCompleter struct {
	endpoint string
	client   *http.Client
}

// NewProxyCompleter returns a completer for the server at baseURL. A nil
// client means http.DefaultClient.
func NewProxyCompleter(baseURL string, client *http.Client) *ProxyCompleter {
	if baseURL == "" {
		baseURL = DefaultProxyURL
	}
	return &ProxyCompleter{
		endpoint: strings.TrimRight(baseURL, "/") + ProxyPath,
		client:   client,
	}
}

// Endpoint returns the full proxy URL.
func (p *ProxyCompleter) Endpoint() string {
	return p.endpoint
}

// Complete forwards the call. Non-success answers become a *ProxyError.
func (p *ProxyCompleter) Complete(ctx context.Context, call Call) (json.RawMessage, error) {
	request := dispatch.ProxyRequest{
		Provider: string(call.Provider),
		APIKey:   call.APIKey,
		Prompt:   call.Prompt,
	}
	if call.Schema != nil {
		schema, err := json.Marshal(call.Schema)
		if err != nil {
			return nil, fmt.Errorf("error marshaling response schema: %w", err)
		}
		request.ResponseSchema = schema
	}

	_, out, err := utils.DoPostSync[json.RawMessage](ctx, p.client, p.endpoint, "", request)
	if err != nil {
		var httpErr *utils.HTTPError
		if errors.As(err, &httpErr) {
			return nil, proxyErrorFrom(httpErr)
		}
		return nil, fmt.Errorf("error calling %s via proxy: %w", call.Provider, err)
	}
	return *out, nil
}
