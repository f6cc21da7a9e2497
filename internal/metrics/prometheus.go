package metrics

import (
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	promhttp "github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "entitylens"

// Prometheus is a Recorder backed by its own Prometheus registry.
type Prometheus struct {
	registry      *prom.Registry
	proxyTotal    *prom.CounterVec
	proxySeconds  *prom.HistogramVec
	lookupTotal   *prom.CounterVec
	lookupSeconds *prom.HistogramVec
}

// NewPrometheus creates the collectors and registers them, together with the
// Go runtime and process collectors, on a fresh registry.
func NewPrometheus() *Prometheus {
	p := &Prometheus{
		registry: prom.NewRegistry(),
		proxyTotal: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "proxy_requests_total",
			Help:      "Total number of proxy dispatches by provider and outcome",
		}, []string{"provider", "outcome"}),
		proxySeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "proxy_request_seconds",
			Help:      "Proxy dispatch duration in seconds",
			Buckets:   prom.DefBuckets,
		}, []string{"provider", "outcome"}),
		lookupTotal: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "lookups_total",
			Help:      "Total number of entity lookups by provider and route",
		}, []string{"provider", "route", "success"}),
		lookupSeconds: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "lookup_seconds",
			Help:      "Entity lookup duration in seconds",
			Buckets:   prom.DefBuckets,
		}, []string{"provider", "route", "success"}),
	}

	p.registry.MustRegister(
		p.proxyTotal, p.proxySeconds, p.lookupTotal, p.lookupSeconds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prometheus) IncProxyTotal(provider, outcome string) {
	p.proxyTotal.WithLabelValues(provider, outcome).Inc()
}

func (p *Prometheus) ObserveProxySeconds(provider, outcome string, seconds float64) {
	p.proxySeconds.WithLabelValues(provider, outcome).Observe(seconds)
}

func (p *Prometheus) IncLookupTotal(provider, route string, success bool) {
	p.lookupTotal.WithLabelValues(provider, route, fmt.Sprintf("%t", success)).Inc()
}

func (p *Prometheus) ObserveLookupSeconds(provider, route string, success bool, seconds float64) {
	p.lookupSeconds.WithLabelValues(provider, route, fmt.Sprintf("%t", success)).Observe(seconds)
}

// Handler serves the registry in the Prometheus text format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
