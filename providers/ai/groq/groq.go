package groq

import (
	"os"

	"github.com/leofalp/entitylens/providers/ai/openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// DefaultModel is the model used when a request leaves Model empty.
const DefaultModel = "llama-3.1-70b-versatile"

// New creates a Groq provider with defaults from environment.
// Environment variables:
//   - GROQ_API_KEY: API key for authentication
//   - GROQ_API_BASE_URL: Base URL for API (optional)
func New() *openai.OpenAIProvider {
	baseURL := os.Getenv("GROQ_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return openai.NewCompatible("groq", "GROQ_API_KEY", baseURL)
}
