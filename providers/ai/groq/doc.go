// Package groq configures the [openai] provider for Groq's OpenAI-compatible
// endpoint. [New] reads GROQ_API_KEY and GROQ_API_BASE_URL from the environment.
package groq
