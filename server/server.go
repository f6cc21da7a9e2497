package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/handlers"

	"github.com/leofalp/entitylens/core/dispatch"
	"github.com/leofalp/entitylens/core/registry"
	"github.com/leofalp/entitylens/internal/config"
	"github.com/leofalp/entitylens/internal/metrics"
	"github.com/leofalp/entitylens/providers/observability"
)

const (
	// ProxyPath is the completion proxy route.
	ProxyPath = "/api/ai/proxy"

	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

// Server is the HTTP front of the proxy.
type Server struct {
	cfg        config.Config
	dispatcher *dispatch.Dispatcher
	registry   *registry.Registry
	observer   observability.Provider
	recorder   metrics.Recorder
	metricsH   http.Handler
	engine     *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithDispatcher replaces the dispatcher built from the registry.
func WithDispatcher(d *dispatch.Dispatcher) Option {
	return func(s *Server) {
		s.dispatcher = d
	}
}

// WithRegistry sets the backends used by the default dispatcher.
func WithRegistry(r *registry.Registry) Option {
	return func(s *Server) {
		s.registry = r
	}
}

// WithObserver sets the observer used for spans and access logs.
func WithObserver(o observability.Provider) Option {
	return func(s *Server) {
		s.observer = o
	}
}

// WithMetrics sets the recorder and the handler mounted on /metrics.
func WithMetrics(r metrics.Recorder, h http.Handler) Option {
	return func(s *Server) {
		s.recorder = r
		s.metricsH = h
	}
}

// New builds the server and its routes.
func New(cfg config.Config, opts ...Option) (*Server, error) {
	s := &Server{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.MetricsEnabled && s.metricsH == nil {
		p := metrics.NewPrometheus()
		s.recorder, s.metricsH = p, p.Handler()
	}
	if s.recorder == nil {
		s.recorder = metrics.Default()
	}

	if s.dispatcher == nil {
		backends := s.registry
		if backends == nil {
			backends = registry.New()
		}
		s.dispatcher = dispatch.New(backends,
			dispatch.WithMetrics(s.recorder),
			dispatch.WithObserver(s.observer),
		)
	}

	if err := s.routes(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) routes() error {
	engine := gin.New()
	engine.Use(gin.Recovery(), requestContext(s.observer))

	engine.POST(ProxyPath, s.handleProxy)
	engine.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if s.cfg.MetricsEnabled {
		engine.GET("/metrics", gin.WrapH(s.metricsH))
	}

	switch {
	case s.cfg.IsProduction():
		engine.NoRoute(staticHandler(s.cfg.StaticDir))
	case s.cfg.DevServerURL != "":
		target, err := url.Parse(s.cfg.DevServerURL)
		if err != nil || target.Host == "" {
			return fmt.Errorf("invalid DEV_SERVER_URL %q", s.cfg.DevServerURL)
		}
		engine.NoRoute(devProxyHandler(target))
	}

	s.engine = engine
	return nil
}

// Engine returns the gin engine without CORS handling.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Handler returns the full handler: the engine behind CORS.
func (s *Server) Handler() http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(s.cfg.AllowOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", HeaderRequestID}),
		handlers.ExposedHeaders([]string{HeaderRequestID}),
	)(s.engine)
}

func (s *Server) handleProxy(c *gin.Context) {
	// An empty body is an empty request and fails as an unsupported provider.
	var req dispatch.ProxyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		s.logError(c.Request.Context(), "Invalid proxy request body", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := s.dispatcher.Dispatch(c.Request.Context(), req)
	if err != nil {
		status, msg := dispatch.StatusFor(req.Provider, err)
		c.JSON(status, gin.H{"error": msg})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

func (s *Server) logError(ctx context.Context, msg string, err error) {
	if s.observer != nil {
		s.observer.Error(ctx, msg, observability.Error(err))
	}
}

// Run listens on the configured address until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("can't listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	if s.observer != nil {
		s.observer.Info(ctx, "Server listening",
			observability.String("addr", ln.Addr().String()),
			observability.String("mode", s.cfg.Mode),
		)
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		_ = srv.Close()
		return fmt.Errorf("shutdown: %w", err)
	}
	if s.observer != nil {
		s.observer.Info(context.Background(), "Server stopped")
	}
	return nil
}
