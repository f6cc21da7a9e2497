package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/leofalp/entitylens/internal/utils"
)

var (
	// ErrMissingAPIKey is returned by the local route when neither the call
	// nor the client carries a key. No request is sent.
	ErrMissingAPIKey = errors.New("API key is not provided. Please set it in the API Settings or environment variables.")

	// ErrSchemaMismatch wraps the validation errors of a reply that does not
	// match the response schema.
	ErrSchemaMismatch = errors.New("response does not match the entity schema")
)

// ProxyError is a non-success answer from the proxy endpoint.
type ProxyError struct {
	StatusCode int
	Message    string
}

func (e *ProxyError) Error() string {
	return e.Message
}

// proxyErrorFrom converts an HTTP failure into a ProxyError carrying the
// body's "error" field, or a generic message when there is none.
func proxyErrorFrom(httpErr *utils.HTTPError) *ProxyError {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(httpErr.Body, &body); err == nil && body.Error != "" {
		return &ProxyError{StatusCode: httpErr.StatusCode, Message: body.Error}
	}
	return &ProxyError{
		StatusCode: httpErr.StatusCode,
		Message:    fmt.Sprintf("Server error: %d", httpErr.StatusCode),
	}
}
