package registry

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/leofalp/entitylens/core/parse"
	"github.com/leofalp/entitylens/internal/jsonschema"
	"github.com/leofalp/entitylens/providers/ai"
	"github.com/leofalp/entitylens/providers/ai/anthropic"
	"github.com/leofalp/entitylens/providers/ai/gemini"
	"github.com/leofalp/entitylens/providers/ai/groq"
	"github.com/leofalp/entitylens/providers/ai/openai"
	"github.com/leofalp/entitylens/providers/observability"
)

// StructuredMode selects how a backend asks for JSON output.
type StructuredMode int

const (
	// ModePrompt relies on the prompt wording only.
	ModePrompt StructuredMode = iota
	// ModeJSONObject requests a JSON object without passing the schema.
	ModeJSONObject
	// ModeSchema sends the response schema upstream.
	ModeSchema
)

func (m StructuredMode) String() string {
	switch m {
	case ModeJSONObject:
		return "json_object"
	case ModeSchema:
		return "schema"
	default:
		return "prompt"
	}
}

// Backend describes how one provider is called.
type Backend struct {
	Name         ProviderName
	Model        string
	MaxTokens    int
	PromptSuffix string
	Mode         StructuredMode
	// EmptyAsObject treats an empty reply as {} instead of an error.
	EmptyAsObject bool
	// Repair accepts near-JSON replies; see parse.WithRepair.
	Repair bool
	// New builds a fresh provider for every call; API keys are per request.
	New func() ai.Provider
}

// DefaultBackends returns the built-in backend for every provider name.
func DefaultBackends() map[ProviderName]Backend {
	return map[ProviderName]Backend{
		Gemini: {
			Name:  Gemini,
			Model: "gemini-2.5-flash",
			Mode:  ModeSchema,
			New:   func() ai.Provider { return gemini.New() },
		},
		OpenAI: {
			Name:          OpenAI,
			Model:         "gpt-4o",
			Mode:          ModeJSONObject,
			EmptyAsObject: true,
			New:           func() ai.Provider { return openai.New() },
		},
		Anthropic: {
			Name:         Anthropic,
			Model:        "claude-3-5-sonnet-20240620",
			MaxTokens:    4096,
			PromptSuffix: "\n\nRespond ONLY with a valid JSON object.",
			Mode:         ModePrompt,
			New:          func() ai.Provider { return anthropic.New() },
		},
		Groq: {
			Name:          Groq,
			Model:         groq.DefaultModel,
			Mode:          ModeJSONObject,
			EmptyAsObject: true,
			New:           func() ai.Provider { return groq.New() },
		},
	}
}

// Request builds the chat request sent for prompt.
func (b Backend) Request(prompt string, schema *jsonschema.Schema) ai.ChatRequest {
	request := ai.UserMessage(b.Model, prompt+b.PromptSuffix)

	if b.MaxTokens > 0 {
		request.GenerationConfig = &ai.GenerationConfig{MaxTokens: b.MaxTokens}
	}

	switch b.Mode {
	case ModeJSONObject:
		request.ResponseFormat = &ai.ResponseFormat{Type: ai.FormatJSONObject}
	case ModeSchema:
		if schema != nil {
			request.ResponseFormat = &ai.ResponseFormat{Type: ai.FormatJSONSchema, OutputSchema: schema}
		} else {
			request.ResponseFormat = &ai.ResponseFormat{Type: ai.FormatJSONObject}
		}
	}

	return request
}

// Complete sends prompt with apiKey and returns the reply as a JSON object.
// An empty apiKey leaves the provider's environment default in place.
func (b Backend) Complete(ctx context.Context, apiKey, prompt string, schema *jsonschema.Schema) (json.RawMessage, error) {
	if b.New == nil {
		return nil, fmt.Errorf("backend %s has no provider constructor", b.Name)
	}

	provider := b.New()
	if apiKey != "" {
		provider = provider.WithAPIKey(apiKey)
	}

	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Debug(ctx, "Sending completion request",
			observability.String(observability.AttrLLMProvider, provider.Name()),
			observability.String(observability.AttrLLMModel, b.Model),
			observability.Int(observability.AttrPromptLength, len(prompt)),
			observability.String(observability.AttrLLMStructuredOutput, b.Mode.String()),
		)
	}

	response, err := provider.SendMessage(ctx, b.Request(prompt, schema))
	if err != nil {
		return nil, err
	}
	if response.Content == "" && response.Refusal != "" {
		return nil, fmt.Errorf("%s declined to answer: %s", b.Name, response.Refusal)
	}

	raw, err := parse.JSONObject(response.Content, b.parseOptions()...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s response: %w", b.Name, err)
	}
	return raw, nil
}

func (b Backend) parseOptions() []parse.Option {
	var opts []parse.Option
	if b.EmptyAsObject {
		opts = append(opts, parse.WithEmptyAsObject())
	}
	if b.Repair {
		opts = append(opts, parse.WithRepair())
	}
	return opts
}
