package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/leofalp/entitylens/internal/jsonschema"
	"github.com/leofalp/entitylens/internal/utils"
	"github.com/leofalp/entitylens/providers/ai"
)

func TestNewOpenAIProviderWithoutEnvVariable(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_API_BASE_URL", "")

	p := New()
	if p == nil {
		t.Fatal("expected provider to be created even without env variable")
	}
	if p.baseURL != defaultBaseURL {
		t.Errorf("expected default base URL, got %s", p.baseURL)
	}
	if p.Name() != "openai" {
		t.Errorf("expected name 'openai', got %s", p.Name())
	}
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	t.Setenv("OPENAI_API_BASE_URL", "https://proxy.example.com/v1")

	p := New()
	if p.apiKey != "env-key" {
		t.Errorf("expected key from env, got %q", p.apiKey)
	}
	if p.baseURL != "https://proxy.example.com/v1" {
		t.Errorf("expected base URL from env, got %q", p.baseURL)
	}
}

func TestSendMessageWithValidResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != chatCompletionsEndpoint {
			t.Errorf("expected path %s, got %s", chatCompletionsEndpoint, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("expected Authorization header 'Bearer test-key', got %s", r.Header.Get("Authorization"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected Content-Type 'application/json', got %s", r.Header.Get("Content-Type"))
		}

		var body chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		if body.Model != "gpt-4o" {
			t.Errorf("expected model gpt-4o, got %s", body.Model)
		}
		if body.ResponseFormat == nil || body.ResponseFormat.Type != "json_object" {
			t.Errorf("expected json_object response format, got %+v", body.ResponseFormat)
		}
		if len(body.Messages) != 1 || body.Messages[0].Role != "user" {
			t.Errorf("unexpected messages: %+v", body.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-4o",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"resolved_name\":\"Glucose\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer server.Close()

	p := New().WithAPIKey("test-key").WithBaseURL(server.URL)

	request := ai.UserMessage("", "Describe glucose as JSON")
	request.ResponseFormat = &ai.ResponseFormat{Type: ai.FormatJSONObject}

	response, err := p.SendMessage(context.Background(), request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if response.Content != `{"resolved_name":"Glucose"}` {
		t.Errorf("unexpected content: %s", response.Content)
	}
	if response.FinishReason != "stop" {
		t.Errorf("expected finish reason 'stop', got %s", response.FinishReason)
	}
	if response.Usage == nil || response.Usage.TotalTokens != 15 {
		t.Errorf("unexpected usage: %+v", response.Usage)
	}
}

// TestSendMessageMissingAPIKey verifies no request is sent without a key.
func TestSendMessageMissingAPIKey(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer server.Close()

	t.Setenv("OPENAI_API_KEY", "")
	_, err := New().WithBaseURL(server.URL).SendMessage(context.Background(), ai.UserMessage("", "hi"))
	if !errors.Is(err, ai.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("expected env var name in error, got %v", err)
	}
	if atomic.LoadInt32(&calls) != 0 {
		t.Errorf("expected no HTTP calls, got %d", calls)
	}
}

// TestSendMessageUpstreamError verifies provider errors surface as *utils.HTTPError.
func TestSendMessageUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	_, err := New().WithAPIKey("bad").WithBaseURL(server.URL).SendMessage(context.Background(), ai.UserMessage("", "hi"))

	var httpErr *utils.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *utils.HTTPError, got %v", err)
	}
	if httpErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", httpErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "Incorrect API key provided") {
		t.Errorf("expected upstream message in error, got %v", err)
	}
}

func TestSendMessageNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"x","choices":[]}`))
	}))
	defer server.Close()

	_, err := New().WithAPIKey("k").WithBaseURL(server.URL).SendMessage(context.Background(), ai.UserMessage("", "hi"))
	if err == nil || !strings.Contains(err.Error(), "no choices") {
		t.Errorf("expected no choices error, got %v", err)
	}
}

func TestRequestToChatCompletion(t *testing.T) {
	schema := &jsonschema.Schema{Type: jsonschema.TypeObject}

	tests := []struct {
		name       string
		request    ai.ChatRequest
		wantFormat *chatResponseFormat
		wantMsgs   int
	}{
		{
			name:     "plain text",
			request:  ai.UserMessage("m", "hello"),
			wantMsgs: 1,
		},
		{
			name: "system prompt first",
			request: ai.ChatRequest{
				Model:        "m",
				SystemPrompt: "be terse",
				Messages:     []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
			},
			wantMsgs: 2,
		},
		{
			name: "json object ignores schema",
			request: ai.ChatRequest{
				Messages:       []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
				ResponseFormat: &ai.ResponseFormat{Type: ai.FormatJSONObject, OutputSchema: schema},
			},
			wantFormat: &chatResponseFormat{Type: "json_object"},
			wantMsgs:   1,
		},
		{
			name: "schema without type becomes json_schema",
			request: ai.ChatRequest{
				Messages:       []ai.Message{{Role: ai.RoleUser, Content: "hello"}},
				ResponseFormat: &ai.ResponseFormat{OutputSchema: schema},
			},
			wantFormat: &chatResponseFormat{Type: "json_schema"},
			wantMsgs:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := requestToChatCompletion(tt.request)
			if len(got.Messages) != tt.wantMsgs {
				t.Errorf("expected %d messages, got %d", tt.wantMsgs, len(got.Messages))
			}
			if tt.request.SystemPrompt != "" && got.Messages[0].Role != "system" {
				t.Errorf("expected system message first, got %s", got.Messages[0].Role)
			}
			if tt.wantFormat == nil {
				if got.ResponseFormat != nil {
					t.Errorf("expected no response format, got %+v", got.ResponseFormat)
				}
				return
			}
			if got.ResponseFormat == nil || got.ResponseFormat.Type != tt.wantFormat.Type {
				t.Fatalf("expected format %s, got %+v", tt.wantFormat.Type, got.ResponseFormat)
			}
			if tt.wantFormat.Type == "json_schema" && (got.ResponseFormat.JSONSchema == nil || got.ResponseFormat.JSONSchema.Schema != schema) {
				t.Errorf("expected schema to be forwarded")
			}
		})
	}
}

func TestGenerationConfigMapping(t *testing.T) {
	req := ai.UserMessage("m", "hi")
	req.GenerationConfig = &ai.GenerationConfig{MaxTokens: 256, Temperature: 0.5}

	got := requestToChatCompletion(req)
	if got.MaxTokens == nil || *got.MaxTokens != 256 {
		t.Errorf("expected max_tokens 256, got %v", got.MaxTokens)
	}
	if got.Temperature == nil || *got.Temperature != 0.5 {
		t.Errorf("expected temperature 0.5, got %v", got.Temperature)
	}
}
