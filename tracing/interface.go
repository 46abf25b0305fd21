package tracing

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// Tracer is the contract of the assembled tracing facade.
// It is implemented by the concrete *Tracing type returned by NewTracing.
//
// A Tracer is immutable once built and safe for concurrent use from any
// number of goroutines; recording a span never blocks on network I/O.
type Tracer interface {
	// Sampler returns the trace sampler selected during assembly.
	Sampler() Sampler

	// LocalServiceName returns the service identity attached to reported spans.
	LocalServiceName() string

	// TraceID128Bit reports whether 128-bit trace identifiers are generated.
	TraceID128Bit() bool

	// NewTraceID generates a random trace identifier honoring the configured
	// trace-ID width. In 64-bit mode the high 8 bytes are zero.
	NewTraceID() trace.TraceID

	// NewSpanID generates a random, non-zero span identifier.
	NewSpanID() trace.SpanID

	// FormatTraceID renders a trace identifier in its wire form: 32 hex
	// characters in 128-bit mode, 16 in 64-bit mode.
	FormatTraceID(id trace.TraceID) string

	// ReportSpan samples, serializes, and enqueues a span for asynchronous
	// export. Spans declined by the sampler are dropped silently; without a
	// sender the span is sampled and discarded. The call never performs
	// network I/O.
	ReportSpan(span *Span) error

	// Report enqueues an already-encoded span for asynchronous export,
	// bypassing the sampler and serializer. No-op without a sender.
	Report(encoded []byte)

	// Close flushes buffered spans and stops the background export path.
	// Intended for the host's shutdown hook; the facade must not be used
	// afterwards.
	Close(ctx context.Context) error
}

// Sampler deterministically decides whether the trace with a given identifier
// is recorded, matching the configured long-run rate. Implementations are
// stateless and safe for concurrent use.
type Sampler interface {
	// IsSampled reports whether the trace with this identifier is recorded.
	// The same identifier always yields the same decision.
	IsSampled(id trace.TraceID) bool
}

// Sender delivers batches of already-encoded spans to a trace collector.
// This is the only wire contract the pipeline owns: a sender accepts encoded
// span batches and delivers them on the background export path, independent
// of the record-processing goroutines. It may fail without affecting the
// caller's primary data flow.
type Sender interface {
	// Send delivers one batch of encoded spans. Called from the reporter's
	// background goroutine only.
	Send(ctx context.Context, spans [][]byte) error

	// Encoding returns the span encoding this sender was built for.
	Encoding() Encoding

	// Close releases the sender's network resources.
	Close() error
}

// SpanSerializer encodes a span into the byte form the configured sender
// transports. Implementations must be safe for concurrent use.
type SpanSerializer interface {
	// Serialize converts the span to its wire encoding.
	Serialize(span *Span) ([]byte, error)
}
