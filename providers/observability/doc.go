// Package observability defines the interfaces and semantic conventions used
// for tracing and structured logging across entitylens.
//
// The central entry point is [Provider], which composes [Tracer] and [Logger]
// into a single injectable dependency. Callers propagate an active [Provider]
// and [Span] through a [context.Context] using [ContextWithObserver] and
// [ContextWithSpan]; provider adapters retrieve them with [ObserverFromContext]
// and [SpanFromContext] and stay silent when none is present.
//
// Metrics are not part of this package; counters and histograms live in
// internal/metrics and are exported through Prometheus.
package observability
