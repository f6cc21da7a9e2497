// Package server exposes the proxy endpoint and the web frontend over HTTP.
//
// Routes:
//
//	POST /api/ai/proxy  dispatch one completion, see core/dispatch
//	GET  /healthz       liveness probe
//	GET  /metrics       Prometheus metrics, when enabled
//
// Any other route falls through to the frontend: the built assets in
// production, the dev server in development.
package server
