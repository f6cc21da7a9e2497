// Package utils provides shared low-level helpers used by the provider
// adapters and the proxy client: a synchronous JSON POST helper with typed
// HTTP errors, and string helpers for log-safe previews.
//
// Key entry points: [DoPostSync] for JSON round-trips, [HTTPError] for
// non-2xx replies, [TruncateString] for bounded log output.
package utils
