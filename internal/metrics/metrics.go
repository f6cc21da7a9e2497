// Package metrics provides a minimal instrumentation interface with a no-op
// default and a Prometheus-backed implementation for the HTTP server.
package metrics

import (
	"sync"
	"time"
)

// Proxy outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeUnsupported = "unsupported"
	OutcomeError       = "error"
)

// Recorder defines the metrics surface used across the codebase.
type Recorder interface {
	IncProxyTotal(provider, outcome string)
	ObserveProxySeconds(provider, outcome string, seconds float64)
	IncLookupTotal(provider, route string, success bool)
	ObserveLookupSeconds(provider, route string, success bool, seconds float64)
}

// noopRecorder implements Recorder with no-ops.
type noopRecorder struct{}

func (n *noopRecorder) IncProxyTotal(string, string)                       {}
func (n *noopRecorder) ObserveProxySeconds(string, string, float64)        {}
func (n *noopRecorder) IncLookupTotal(string, string, bool)                {}
func (n *noopRecorder) ObserveLookupSeconds(string, string, bool, float64) {}

// Noop returns a Recorder that discards everything.
func Noop() Recorder {
	return &noopRecorder{}
}

var (
	recMu    sync.RWMutex
	recorder Recorder = &noopRecorder{}
)

// Default returns the current recorder.
func Default() Recorder {
	recMu.RLock()
	defer recMu.RUnlock()
	return recorder
}

// SetRecorder swaps the global recorder implementation. A nil r restores the no-op.
func SetRecorder(r Recorder) {
	recMu.Lock()
	defer recMu.Unlock()
	if r == nil {
		r = &noopRecorder{}
	}
	recorder = r
}

// TimeProxy times one proxy dispatch on r.
func TimeProxy(r Recorder, provider string) func(outcome string) {
	start := time.Now()
	return func(outcome string) {
		dur := time.Since(start).Seconds()
		r.IncProxyTotal(provider, outcome)
		r.ObserveProxySeconds(provider, outcome, dur)
	}
}

// TimeLookup times one client lookup on r.
func TimeLookup(r Recorder, provider, route string) func(success bool) {
	start := time.Now()
	return func(success bool) {
		dur := time.Since(start).Seconds()
		r.IncLookupTotal(provider, route, success)
		r.ObserveLookupSeconds(provider, route, success, dur)
	}
}
