package tracing

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/trace"

	"github.com/aalemi-dev/tracekit/config"
)

// Tracing is the assembled pipeline facade: the selected sampler, the
// optional asynchronous export path, the service identity, and the trace-ID
// width, composed once and never mutated afterwards.
//
// The facade is owned by the host process for the remainder of its run and
// is safe for concurrent use without external synchronization.
//
// Tracing implements the Tracer interface.
type Tracing struct {
	sampler          Sampler
	samplerRate      float64
	reporter         *Reporter
	serializer       SpanSerializer
	localServiceName string
	traceID128Bit    bool
}

// NewTracing interprets the configuration source, validates it, and wires
// sampler, encoding, sender, and service identity into a ready-to-use
// facade. This is the single public entry point of the pipeline; every other
// component is a private collaborator reachable only through it.
//
// Fatal misconfiguration (unknown sender type, unknown encoding, malformed
// boolean text) aborts assembly with an error wrapping
// ErrInvalidConfiguration - no partial facade is returned. An out-of-range
// sampling rate is not fatal: it degrades to "trace nothing" with a warning
// on the option logger.
//
// Assembly itself performs no network I/O. A sender's connection setup is
// lazy; an unreachable collector or broker surfaces later, asynchronously,
// on the export path.
//
// Example:
//
//	src := config.NewMapSource(props)
//	t, err := tracing.NewTracing(src,
//	    tracing.WithLogger(log),
//	    tracing.WithObserver(observer),
//	)
//	if err != nil {
//	    return fmt.Errorf("tracing disabled: %w", err)
//	}
//	defer t.Close(context.Background())
func NewTracing(src config.Source, opts ...BuildOption) (*Tracing, error) {
	options := defaultBuildOptions()
	for _, opt := range opts {
		opt(options)
	}

	localServiceName := localServiceNameOption.Get(src)

	rawFlag := traceID128BitEnabledOption.Get(src)
	traceID128Bit, err := strconv.ParseBool(rawFlag)
	if err != nil {
		return nil, fmt.Errorf("%w: %q for %s", ErrMalformedBoolean, rawFlag, TraceID128BitEnabledConfig)
	}

	encoding, err := resolveEncoding(src)
	if err != nil {
		return nil, err
	}

	serializer := options.serializer
	if serializer == nil {
		switch encoding {
		case EncodingProto3:
			// No marshal function was supplied; ReportSpan will say so.
			serializer = &ProtoSpanSerializer{}
		default:
			serializer = &JSONSpanSerializer{}
		}
	}

	sender := options.sender
	if sender == nil {
		sender, err = resolveSender(src)
		if err != nil {
			return nil, err
		}
	}

	var reporter *Reporter
	if sender != nil {
		reporter = newReporter(sender, options)
	}

	rate := resolveSamplerRate(src, options.log)

	return &Tracing{
		sampler:          NewSampler(rate),
		samplerRate:      rate,
		reporter:         reporter,
		serializer:       serializer,
		localServiceName: localServiceName,
		traceID128Bit:    traceID128Bit,
	}, nil
}

// Sampler returns the trace sampler selected during assembly.
func (t *Tracing) Sampler() Sampler {
	return t.sampler
}

// SamplerRate returns the effective sampling rate after validation, i.e.
// the configured rate or the 0.0 fallback.
func (t *Tracing) SamplerRate() float64 {
	return t.samplerRate
}

// LocalServiceName returns the service identity attached to reported spans.
func (t *Tracing) LocalServiceName() string {
	return t.localServiceName
}

// TraceID128Bit reports whether 128-bit trace identifiers are generated.
func (t *Tracing) TraceID128Bit() bool {
	return t.traceID128Bit
}

// Reporter returns the asynchronous export adapter, or nil when the sender
// type is NONE.
func (t *Tracing) Reporter() *Reporter {
	return t.reporter
}

// NewTraceID generates a random trace identifier honoring the configured
// trace-ID width. In 64-bit mode the high 8 bytes are zero.
func (t *Tracing) NewTraceID() trace.TraceID {
	var id trace.TraceID
	for !id.IsValid() {
		if t.traceID128Bit {
			_, _ = rand.Read(id[:])
		} else {
			_, _ = rand.Read(id[8:])
		}
	}
	return id
}

// NewSpanID generates a random, non-zero span identifier.
func (t *Tracing) NewSpanID() trace.SpanID {
	var id trace.SpanID
	for !id.IsValid() {
		_, _ = rand.Read(id[:])
	}
	return id
}

// FormatTraceID renders a trace identifier in its wire form: 32 lower-hex
// characters in 128-bit mode, 16 in 64-bit mode.
func (t *Tracing) FormatTraceID(id trace.TraceID) string {
	if t.traceID128Bit {
		return id.String()
	}
	return hex.EncodeToString(id[8:])
}

// ReportSpan samples, serializes, and enqueues a span for asynchronous
// export. The sampling decision is derived from the span's trace identifier,
// so every span of a trace shares its fate. Spans declined by the sampler
// are dropped silently; without a sender the span is sampled and discarded.
// The call never performs network I/O.
//
// When the span carries no local endpoint, the configured service identity
// is attached.
func (t *Tracing) ReportSpan(span *Span) error {
	id, err := trace.TraceIDFromHex(padTraceID(span.TraceID))
	if err != nil {
		return fmt.Errorf("invalid trace id %q: %w", span.TraceID, err)
	}
	if !t.sampler.IsSampled(id) {
		return nil
	}
	if t.reporter == nil {
		return nil
	}

	if span.LocalEndpoint == nil {
		clone := *span
		clone.LocalEndpoint = &Endpoint{ServiceName: t.localServiceName}
		span = &clone
	}

	encoded, err := t.serializer.Serialize(span)
	if err != nil {
		return err
	}
	t.reporter.Report(encoded)
	return nil
}

// padTraceID widens a 64-bit (16 hex character) trace identifier to the
// 128-bit form trace.TraceIDFromHex expects.
func padTraceID(s string) string {
	if len(s) >= 32 {
		return s
	}
	return strings.Repeat("0", 32-len(s)) + s
}

// Report enqueues an already-encoded span for asynchronous export, bypassing
// the sampler and serializer. No-op without a sender.
func (t *Tracing) Report(encoded []byte) {
	if t.reporter == nil {
		return
	}
	t.reporter.Report(encoded)
}

// Close flushes buffered spans and stops the background export path. Safe to
// call when no sender is configured. Intended for the host's shutdown hook.
func (t *Tracing) Close(ctx context.Context) error {
	if t.reporter == nil {
		return nil
	}
	return t.reporter.Close(ctx)
}
