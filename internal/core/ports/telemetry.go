package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Tracer records units of work for progress reporting.
type Tracer interface {
	// Start begins recording a new span with the given name.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Close flushes and closes the recording session.
	Close() error
}

// Span represents one unit of work. Collaborator output streams into the
// span's writer.
type Span interface {
	io.Writer
	// End completes the span; a non-nil err marks it failed.
	End(err error)
}

type spanContextKey struct{}

// ContextWithSpan returns a context carrying span, so that collaborator
// adapters can stream subprocess output into it.
func ContextWithSpan(ctx context.Context, span Span) context.Context {
	return context.WithValue(ctx, spanContextKey{}, span)
}

// SpanFromContext returns the span carried by ctx, if any.
func SpanFromContext(ctx context.Context) (Span, bool) {
	span, ok := ctx.Value(spanContextKey{}).(Span)
	return span, ok
}
