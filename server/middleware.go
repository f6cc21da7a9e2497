package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/leofalp/entitylens/providers/observability"
)

// HeaderRequestID carries the request ID in both directions.
const HeaderRequestID = "X-Request-ID"

// requestContext assigns a request ID, opens an HTTP span and writes an
// access log line once the handler chain is done.
func requestContext(observer observability.Provider) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)

		ctx := observability.ContextWithRequestID(c.Request.Context(), id)
		if observer == nil {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		ctx = observability.ContextWithObserver(ctx, observer)
		ctx, span := observer.StartSpan(ctx, observability.SpanHTTPRequest,
			observability.String(observability.AttrHTTPMethod, c.Request.Method),
			observability.String(observability.AttrHTTPRoute, route),
			observability.String(observability.AttrRequestID, id),
		)
		defer span.End()
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		status := c.Writer.Status()
		span.SetAttributes(observability.Int(observability.AttrHTTPStatusCode, status))
		if status >= 500 {
			span.SetStatus(observability.StatusError, "")
		} else {
			span.SetStatus(observability.StatusOK, "")
		}

		attrs := []observability.Attribute{
			observability.String(observability.AttrHTTPMethod, c.Request.Method),
			observability.String(observability.AttrHTTPRoute, route),
			observability.Int(observability.AttrHTTPStatusCode, status),
			observability.Duration(observability.AttrHTTPDuration, elapsed),
		}
		if status >= 500 {
			observer.Error(ctx, "HTTP request failed", attrs...)
			return
		}
		observer.Info(ctx, "HTTP request", attrs...)
	}
}
