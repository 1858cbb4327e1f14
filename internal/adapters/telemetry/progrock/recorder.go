// Package progrock provides the Progrock implementation of the tracer.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/elfgen/internal/core/ports"
)

// Tracer implements ports.Tracer using the progrock library. Each span is a
// progrock vertex; collaborator output written to the span shows up under the
// vertex in the progress display.
type Tracer struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Tracer with a default tape.
func New() ports.Tracer {
	return NewTracer(progrock.NewTape())
}

// NewTracer creates a Tracer recording to the given writer.
func NewTracer(w progrock.Writer) *Tracer {
	return &Tracer{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins a new vertex named name and threads the span through the
// returned context for collaborator adapters.
func (t *Tracer) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	v := t.rec.Vertex(digest.FromString(name), name)
	span := &Span{vertex: v}
	return ports.ContextWithSpan(ctx, span), span
}

// Close flushes and closes the recording session.
func (t *Tracer) Close() error {
	if c, ok := t.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Ensure Tracer satisfies the interface.
var _ ports.Tracer = (*Tracer)(nil)
