package observability

// Semantic conventions for attribute keys, span names and event names.
// Use these constants instead of string literals so log queries stay stable.

// --- LLM Provider Attributes ---

const (
	// AttrLLMProvider is the name of the LLM provider (e.g., "openai", "anthropic")
	AttrLLMProvider = "llm.provider"

	// AttrLLMModel is the model identifier (e.g., "gpt-4o")
	AttrLLMModel = "llm.model"

	// AttrLLMEndpoint is the API endpoint URL
	AttrLLMEndpoint = "llm.endpoint"

	// AttrLLMResponseID is the unique response identifier from the provider
	AttrLLMResponseID = "llm.response.id"

	// AttrLLMFinishReason is the reason the generation finished
	AttrLLMFinishReason = "llm.finish_reason"

	// AttrLLMTokensTotal is the total number of tokens
	AttrLLMTokensTotal = "llm.tokens.total" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// AttrLLMStructuredOutput reports whether a response schema was sent upstream
	AttrLLMStructuredOutput = "llm.structured_output"
)

// --- Entity Lookup Attributes ---

const (
	// AttrEntityName is the entity name as typed by the caller
	AttrEntityName = "entity.name"

	// AttrEntityOntology is the ontology selector
	AttrEntityOntology = "entity.ontology"

	// AttrEntityDeepSearch reports whether the exhaustive prompt was used
	AttrEntityDeepSearch = "entity.deep_search"

	// AttrEntityRoute is the dispatch route ("local" or "proxy")
	AttrEntityRoute = "entity.route"

	// AttrPromptLength is the prompt length in bytes
	AttrPromptLength = "prompt.length"
)

// --- HTTP Attributes ---

const (
	// AttrHTTPMethod is the HTTP method (GET, POST, etc.)
	AttrHTTPMethod = "http.method"

	// AttrHTTPRoute is the matched route template
	AttrHTTPRoute = "http.route"

	// AttrHTTPStatusCode is the HTTP response status code
	AttrHTTPStatusCode = "http.status_code"

	// AttrHTTPURL is the full request URL
	AttrHTTPURL = "http.url"

	// AttrHTTPRequestBodySize is the request body size in bytes
	AttrHTTPRequestBodySize = "http.request.body.size"

	// AttrHTTPResponseBodySize is the response body size in bytes
	AttrHTTPResponseBodySize = "http.response.body.size"

	// AttrHTTPDuration is the round-trip duration of an HTTP request
	AttrHTTPDuration = "http.request.duration"

	// AttrRequestID is the per-request identifier assigned by the server
	AttrRequestID = "request.id"
)

// --- General Attributes ---

const (
	// AttrError is the error message
	AttrError = "error"

	// AttrDuration is the operation duration
	AttrDuration = "duration"

	// AttrStatus is the operation status
	AttrStatus = "status"

	// AttrStatusDescription is the status description
	AttrStatusDescription = "status_description"
)

// --- Span Names ---

const (
	// SpanHTTPRequest wraps one inbound HTTP request
	SpanHTTPRequest = "http.request"

	// SpanProxyDispatch wraps one server-side provider dispatch
	SpanProxyDispatch = "proxy.dispatch"

	// SpanEntityLookup wraps one client-side entity lookup
	SpanEntityLookup = "entity.lookup"
)

// --- Event Names ---

const (
	// EventLLMRequestStart marks the start of an LLM request
	EventLLMRequestStart = "llm.request.start"

	// EventLLMRequestEnd marks the end of an LLM request
	EventLLMRequestEnd = "llm.request.end"

	// EventTokensReceived marks when tokens are received from LLM
	EventTokensReceived = "llm.tokens.received" // #nosec G101 -- Not a credential, token refers to LLM tokens

	// EventHTTPRequestPrepared marks a request body ready to send
	EventHTTPRequestPrepared = "http.request.prepared"

	// EventHTTPRequestError marks a transport-level failure
	EventHTTPRequestError = "http.request.error"

	// EventHTTPResponseReceived marks a response read in full
	EventHTTPResponseReceived = "http.response.received"

	// EventDeepSearchRetry marks the automatic retry with the exhaustive prompt
	EventDeepSearchRetry = "entity.deep_search.retry"
)
