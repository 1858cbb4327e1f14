// Package telemetry provides tracer implementations for progress reporting.
package telemetry

import (
	"context"

	"go.trai.ch/elfgen/internal/core/ports"
)

// NoopTracer implements ports.Tracer without recording anything. Tests and
// callers that assemble the pipeline by hand use it in place of the recorded
// tracer.
type NoopTracer struct{}

// NewNoop creates a tracer that discards all spans.
func NewNoop() *NoopTracer {
	return &NoopTracer{}
}

// Start returns the context unchanged and a span that discards everything.
func (t *NoopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

// Close is a no-op.
func (t *NoopTracer) Close() error { return nil }

type noopSpan struct{}

func (noopSpan) Write(p []byte) (int, error) { return len(p), nil }
func (noopSpan) End(error)                   {}

// Ensure NoopTracer satisfies the interface.
var _ ports.Tracer = (*NoopTracer)(nil)
