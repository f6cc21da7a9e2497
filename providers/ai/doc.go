// Package ai defines the shared, provider-agnostic types and interfaces used
// by every LLM provider implementation (OpenAI, Groq, Gemini, Anthropic).
// Each provider's conversion layer maps these types to its own wire format,
// keeping the rest of the codebase decoupled from provider-specific details.
//
// The central interface is [Provider]. Request data flows through
// [ChatRequest] and responses are returned as [ChatResponse].
package ai
