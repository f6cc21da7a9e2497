package utils

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type valueResponse struct {
	Value int `json:"value"`
}

// TestDoPostSync_Success verifies that a 200 response with valid JSON is
// decoded into the output struct and the Bearer token is sent.
func TestDoPostSync_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected Bearer auth, got %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("expected JSON content type, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"value":42}`)
	}))
	defer server.Close()

	_, result, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "test-key", map[string]string{"q": "test"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result == nil || result.Value != 42 {
		t.Fatalf("expected Value=42, got %+v", result)
	}
}

// TestDoPostSync_HeaderOptions verifies that extra headers are applied and no
// Authorization header is set when apiKey is empty.
func TestDoPostSync_HeaderOptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-api-key"); got != "secret" {
			t.Errorf("expected x-api-key header, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		fmt.Fprint(w, `{"value":1}`)
	}))
	defer server.Close()

	_, _, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "", struct{}{}, HeaderOption{Key: "x-api-key", Value: "secret"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

// TestDoPostSync_Non2xxStatus verifies that a non-2xx status yields an
// *HTTPError carrying the status code and body.
func TestDoPostSync_Non2xxStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`)
	}))
	defer server.Close()

	res, _, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected error for 401 response, got nil")
	}
	if res == nil || res.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected response with status 401, got %+v", res)
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *HTTPError, got %T", err)
	}
	if httpErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", httpErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "Incorrect API key provided") {
		t.Errorf("expected provider message in error, got %q", err.Error())
	}
}

// TestDoPostSync_UnmarshalError verifies that an undecodable 200 body returns
// an error mentioning "unmarshaling".
func TestDoPostSync_UnmarshalError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	}))
	defer server.Close()

	_, _, err := DoPostSync[valueResponse](context.Background(), server.Client(), server.URL, "", nil)
	if err == nil {
		t.Fatal("expected unmarshal error, got nil")
	}
	if !strings.Contains(err.Error(), "unmarshaling") {
		t.Errorf("expected unmarshaling error, got %v", err)
	}
}

// TestDoPostSync_ContextCancelled verifies that a cancelled context aborts the
// request before a response is read.
func TestDoPostSync_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"value":1}`)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := DoPostSync[valueResponse](ctx, server.Client(), server.URL, "", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestHTTPError_Message(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "flat error string", body: `{"error":"Provider Cohere not supported via proxy."}`, want: "Provider Cohere not supported via proxy."},
		{name: "nested error message", body: `{"error":{"message":"quota exceeded"}}`, want: "quota exceeded"},
		{name: "plain text", body: "  upstream down \n", want: "upstream down"},
		{name: "json without error", body: `{"detail":"x"}`, want: `{"detail":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &HTTPError{StatusCode: 500, Body: []byte(tt.body)}
			if got := e.Message(); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
