// Package gemini implements the [ai.Provider] interface for Google's Gemini
// generative language API.
//
// It converts the generic [ai.ChatRequest] to Gemini's generateContent wire
// format and maps the reply back to [ai.ChatResponse]. A response schema is
// translated to Gemini's OpenAPI subset (upper-case type names, nullable flag)
// and sent with responseMimeType application/json.
//
// The primary entry point is [New], which reads GEMINI_API_KEY and
// GEMINI_API_BASE_URL from the environment. Use [GeminiProvider.WithAPIKey],
// [GeminiProvider.WithBaseURL], or [GeminiProvider.WithHttpClient] to configure
// the provider programmatically.
package gemini
