// Package dispatch runs the server side of the proxy: it resolves the
// provider named in a [ProxyRequest], makes exactly one completion call with
// the caller's key, and returns the JSON object the model produced.
package dispatch
