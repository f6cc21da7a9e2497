package observability

import (
	"context"
	"testing"
)

type stubSpan struct{ name string }

func (s *stubSpan) End() {}
func (s *stubSpan) SetAttributes(...Attribute) {}
func (s *stubSpan) SetStatus(StatusCode, string) {}
func (s *stubSpan) RecordError(error) {}
func (s *stubSpan) AddEvent(string, ...Attribute) {}

type stubObserver struct{}

func (stubObserver) StartSpan(ctx context.Context, name string, _ ...Attribute) (context.Context, Span) {
	span := &stubSpan{name: name}
	return ContextWithSpan(ctx, span), span
}
func (stubObserver) Trace(context.Context, string, ...Attribute) {}
func (stubObserver) Debug(context.Context, string, ...Attribute) {}
func (stubObserver) Info(context.Context, string, ...Attribute) {}
func (stubObserver) Warn(context.Context, string, ...Attribute) {}
func (stubObserver) Error(context.Context, string, ...Attribute) {}

func TestSpanFromContext(t *testing.T) {
	if SpanFromContext(context.Background()) != nil {
		t.Error("expected nil span on empty context")
	}
	//nolint:staticcheck // nil context is handled explicitly
	if SpanFromContext(nil) != nil {
		t.Error("expected nil span on nil context")
	}

	span := &stubSpan{name: "s"}
	ctx := ContextWithSpan(context.Background(), span)
	if got := SpanFromContext(ctx); got != span {
		t.Errorf("expected stored span, got %v", got)
	}
}

func TestObserverFromContext(t *testing.T) {
	if ObserverFromContext(context.Background()) != nil {
		t.Error("expected nil observer on empty context")
	}

	ctx := ContextWithObserver(context.Background(), stubObserver{})
	if ObserverFromContext(ctx) == nil {
		t.Fatal("expected observer to be retrievable")
	}

	// span and observer keys must not collide
	if SpanFromContext(ctx) != nil {
		t.Error("observer must not be returned as span")
	}
}

func TestRequestIDFromContext(t *testing.T) {
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
	ctx := ContextWithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
}

func TestErrorAttribute(t *testing.T) {
	if attr := Error(nil); attr.Key != AttrError || attr.Value != "" {
		t.Errorf("unexpected nil error attribute %+v", attr)
	}
	if attr := Error(context.Canceled); attr.Value != "context canceled" {
		t.Errorf("unexpected error attribute %+v", attr)
	}
}
