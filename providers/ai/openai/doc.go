// Package openai implements the [ai.Provider] interface for the OpenAI chat
// completions API and for OpenAI-compatible hosts (Groq, OpenRouter, Ollama).
//
// The main entry point is [New], which reads OPENAI_API_KEY and
// OPENAI_API_BASE_URL from the environment. [NewCompatible] builds the same
// provider under another name and base URL. Use [OpenAIProvider.WithAPIKey]
// and [OpenAIProvider.WithBaseURL] to override these values programmatically.
package openai
