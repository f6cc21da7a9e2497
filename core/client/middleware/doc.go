// Package middleware provides built-in [client.Middleware] implementations
// for the entity lookup client.
//
//   - [NewTimeoutMiddleware]: adds a per-call deadline. Lookups have no
//     deadline unless this middleware is installed.
//   - [NewLoggingMiddleware]: emits structured slog entries before and after
//     every completion, with three verbosity levels.
//
// # Usage
//
//	c, err := client.New(
//	    client.WithMiddleware(
//	        middleware.NewTimeoutMiddleware(30*time.Second),
//	        middleware.NewLoggingMiddleware(slog.Default(), middleware.LogLevelStandard),
//	    ),
//	)
//
// Middlewares execute outermost-first: in the example above a call travels
// Timeout, then Logging, then the route's completer.
package middleware
