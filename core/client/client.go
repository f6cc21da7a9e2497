package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/leofalp/entitylens/core/entity"
	"github.com/leofalp/entitylens/core/registry"
	"github.com/leofalp/entitylens/internal/jsonschema"
	"github.com/leofalp/entitylens/internal/metrics"
	"github.com/leofalp/entitylens/providers/observability"
)

// Route selects how a provider is reached.
type Route int

const (
	// RouteLocal calls the provider in-process.
	RouteLocal Route = iota
	// RouteProxy forwards the call to the server's proxy endpoint.
	RouteProxy
)

func (r Route) String() string {
	switch r {
	case RouteLocal:
		return "local"
	case RouteProxy:
		return "proxy"
	default:
		return fmt.Sprintf("route(%d)", int(r))
	}
}

// DefaultRoutes reaches Google Gemini directly and everything else through
// the proxy.
func DefaultRoutes() map[registry.ProviderName]Route {
	return map[registry.ProviderName]Route{
		registry.Gemini:    RouteLocal,
		registry.OpenAI:    RouteProxy,
		registry.Anthropic: RouteProxy,
		registry.Groq:      RouteProxy,
	}
}

// Client performs entity lookups.
type Client struct {
	local       Completer
	proxy       Completer
	routes      map[registry.ProviderName]Route
	middlewares []Middleware
	validate    bool
	autoDeep    bool
	repair      bool
	metrics     metrics.Recorder
	observer    observability.Provider

	registry   *registry.Registry
	defaultKey string
	proxyURL   string
	httpClient *http.Client

	validators sync.Map // entity.Ontology -> *jsonschema.Validator
}

// Option configures a Client.
type Option func(*Client)

// WithRegistry sets the backends used by the local route.
func WithRegistry(r *registry.Registry) Option {
	return func(c *Client) {
		c.registry = r
	}
}

// WithDefaultAPIKey sets the key used by the local route when a lookup
// carries none.
func WithDefaultAPIKey(key string) Option {
	return func(c *Client) {
		c.defaultKey = key
	}
}

// WithProxyURL sets the server base URL for the proxy route.
func WithProxyURL(url string) Option {
	return func(c *Client) {
		c.proxyURL = url
	}
}

// WithHTTPClient sets the HTTP client for both routes.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRoutes replaces the route table. Providers missing from it use the proxy.
func WithRoutes(routes map[registry.ProviderName]Route) Option {
	return func(c *Client) {
		c.routes = routes
	}
}

// WithLocalCompleter replaces the local route implementation.
func WithLocalCompleter(l Completer) Option {
	return func(c *Client) {
		c.local = l
	}
}

// WithProxyCompleter replaces the proxy route implementation.
func WithProxyCompleter(p Completer) Option {
	return func(c *Client) {
		c.proxy = p
	}
}

// WithMiddleware appends middlewares around both routes.
func WithMiddleware(middlewares ...Middleware) Option {
	return func(c *Client) {
		c.middlewares = append(c.middlewares, middlewares...)
	}
}

// WithSchemaValidation toggles checking replies against the response schema.
// Enabled by default.
func WithSchemaValidation(enabled bool) Option {
	return func(c *Client) {
		c.validate = enabled
	}
}

// WithResponseRepair lets the local route accept near-JSON replies (repaired
// brackets, quotes and commas). Off by default, and ignored when WithRegistry
// or WithLocalCompleter supplies the backends.
func WithResponseRepair(enabled bool) Option {
	return func(c *Client) {
		c.repair = enabled
	}
}

// WithAutoDeepSearch makes Lookup retry once with the exhaustive prompt when
// the quick search finds nothing.
func WithAutoDeepSearch(enabled bool) Option {
	return func(c *Client) {
		c.autoDeep = enabled
	}
}

// WithMetrics sets the metrics recorder. Defaults to metrics.Default().
func WithMetrics(r metrics.Recorder) Option {
	return func(c *Client) {
		c.metrics = r
	}
}

// WithObserver sets the observer used when the context carries none.
func WithObserver(o observability.Provider) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// New builds a Client. Without options it routes per DefaultRoutes, reaches
// the proxy at DefaultProxyURL and validates replies.
func New(opts ...Option) (*Client, error) {
	c := &Client{validate: true}
	for _, opt := range opts {
		opt(c)
	}

	for i, m := range c.middlewares {
		if m == nil {
			return nil, fmt.Errorf("middleware at index %d is nil", i)
		}
	}

	if c.routes == nil {
		c.routes = DefaultRoutes()
	}
	if c.metrics == nil {
		c.metrics = metrics.Default()
	}
	if c.local == nil {
		backends := c.registry
		if backends == nil {
			ropts := []registry.Option{registry.WithRepair(c.repair)}
			if c.httpClient != nil {
				ropts = append(ropts, registry.WithHTTPClient(c.httpClient))
			}
			backends = registry.New(ropts...)
		}
		c.local = NewLocalCompleter(backends, c.defaultKey)
	}
	if c.proxy == nil {
		c.proxy = NewProxyCompleter(c.proxyURL, c.httpClient)
	}

	return c, nil
}

// RouteFor returns the route used for provider.
func (c *Client) RouteFor(provider registry.ProviderName) Route {
	if route, ok := c.routes[provider]; ok {
		return route
	}
	return RouteProxy
}

// FetchEntityInfo runs a single lookup for q with provider.
func (c *Client) FetchEntityInfo(ctx context.Context, provider registry.ProviderName, apiKey string, q entity.EntityQuery) (result *entity.EntityResult, err error) {
	route := c.RouteFor(provider)

	observer := observability.ObserverFromContext(ctx)
	if observer == nil {
		observer = c.observer
	}

	var span observability.Span
	if observer != nil {
		ctx, span = observer.StartSpan(ctx, observability.SpanEntityLookup,
			observability.String(observability.AttrLLMProvider, string(provider)),
			observability.String(observability.AttrEntityName, q.OriginalName),
			observability.String(observability.AttrEntityOntology, string(q.Ontology)),
			observability.Bool(observability.AttrEntityDeepSearch, q.DeepSearch),
			observability.String(observability.AttrEntityRoute, route.String()),
		)
		defer span.End()
		ctx = observability.ContextWithObserver(ctx, observer)
	}

	done := metrics.TimeLookup(c.metrics, registry.MetricLabel(string(provider)), route.String())
	defer func() {
		done(err == nil)
		if span == nil {
			return
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(observability.StatusError, err.Error())
			return
		}
		span.SetStatus(observability.StatusOK, "")
	}()

	schema := entity.BuildSchema(q.Ontology)
	call := Call{
		Provider: provider,
		APIKey:   apiKey,
		Prompt:   entity.BuildPrompt(q),
		Schema:   schema,
	}

	raw, err := Chain(c.completerFor(route), c.middlewares...).Complete(ctx, call)
	if err != nil {
		if observer != nil {
			observer.Error(ctx, "Entity lookup failed",
				observability.String(observability.AttrLLMProvider, string(provider)),
				observability.String(observability.AttrEntityRoute, route.String()),
				observability.Error(err),
			)
		}
		return nil, err
	}

	if c.validate {
		validator, err := c.validatorFor(q.Ontology, schema)
		if err != nil {
			return nil, err
		}
		if err := validator.ValidateJSON(raw); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSchemaMismatch, err)
		}
	}

	var res entity.EntityResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode %s result: %w", provider, err)
	}
	return &res, nil
}

// Lookup runs FetchEntityInfo and, with auto deep search enabled, retries
// once with the exhaustive prompt when a quick search finds nothing.
func (c *Client) Lookup(ctx context.Context, provider registry.ProviderName, apiKey string, q entity.EntityQuery) (*entity.EntityResult, error) {
	res, err := c.FetchEntityInfo(ctx, provider, apiKey, q)
	if err != nil || !c.autoDeep || q.DeepSearch || res.Found() {
		return res, err
	}

	if span := observability.SpanFromContext(ctx); span != nil {
		span.AddEvent(observability.EventDeepSearchRetry,
			observability.String(observability.AttrEntityName, q.OriginalName),
		)
	}
	observer := observability.ObserverFromContext(ctx)
	if observer == nil {
		observer = c.observer
	}
	if observer != nil {
		observer.Info(ctx, "Quick search found nothing, retrying with deep search",
			observability.String(observability.AttrEntityName, q.OriginalName),
			observability.String(observability.AttrLLMProvider, string(provider)),
		)
	}

	return c.FetchEntityInfo(ctx, provider, apiKey, q.Deep())
}

func (c *Client) completerFor(route Route) Completer {
	if route == RouteLocal {
		return c.local
	}
	return c.proxy
}

// validatorFor compiles the schema once per ontology.
func (c *Client) validatorFor(o entity.Ontology, schema *jsonschema.Schema) (*jsonschema.Validator, error) {
	if v, ok := c.validators.Load(o); ok {
		return v.(*jsonschema.Validator), nil
	}
	v, err := jsonschema.Compile(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile entity schema: %w", err)
	}
	actual, _ := c.validators.LoadOrStore(o, v)
	return actual.(*jsonschema.Validator), nil
}
