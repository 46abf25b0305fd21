// Package tracing assembles a Zipkin-style span reporting pipeline for Kafka
// clients, driven entirely by the string-keyed configuration the client hands
// to its interceptors at startup.
//
// The package interprets raw configuration values, validates them, resolves
// defaults and fallbacks, selects exactly one transport strategy, and wires
// the resulting sampler, encoding, sender, and service identity into a single
// immutable Tracing facade. Getting this wiring wrong does not fail loudly: a
// mis-selected sender or encoding silently drops spans or fails at the network
// boundary, which is why every decision here is validated at assembly time
// wherever the configuration allows it.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Tracer interface: Defines the contract of the assembled facade
//   - Tracing struct: Concrete, immutable implementation of Tracer
//   - Sampler, Sender, SpanSerializer interfaces: Private collaborators,
//     pluggable for tests and custom transports
//   - NewTracing is the single public entry point; every other component is
//     reachable only through it
//
// Configuration decisions and their failure policies:
//   - Sender type (NONE, HTTP, KAFKA): unknown values abort assembly. A typo
//     here would misroute all trace data, so it must fail fast.
//   - Span encoding (JSON, PROTO3): unknown values abort assembly.
//   - Sampling rate: out-of-range or unparseable values degrade to 0.0
//     (sampling disabled) with a warning instead of failing startup. A
//     misconfigured rate must never prevent the host application from
//     starting.
//   - Security overrides (SASL, TLS): copied into the Kafka sender's client
//     configuration only when present and non-empty, layering on top of the
//     sender defaults without masking them with blanks.
//
// # Concurrency
//
// Assembly is single-threaded and synchronous. The produced facade is
// immutable and safe for concurrent use from any number of goroutines.
// Span export is decoupled from the record-processing path: ReportSpan
// enqueues into a bounded buffer and returns immediately; a background
// goroutine drains the buffer and performs the network send in batches.
// When the buffer is full the newest spans are dropped - tracing never adds
// latency or failure risk to the primary data path.
//
// # Basic Usage
//
//	src := config.NewMapSource(map[string]interface{}{
//		"zipkin.sender.type":   "HTTP",
//		"zipkin.http.endpoint": "http://zipkin:9411/api/v2/spans",
//		"zipkin.sampler.rate":  "0.1",
//	})
//
//	t, err := tracing.NewTracing(src, tracing.WithLogger(log))
//	if err != nil {
//		return err
//	}
//	defer t.Close(context.Background())
//
//	traceID := t.NewTraceID()
//	if t.Sampler().IsSampled(traceID) {
//		_ = t.ReportSpan(&tracing.Span{
//			TraceID: t.FormatTraceID(traceID),
//			ID:      t.NewSpanID().String(),
//			Name:    "send",
//		})
//	}
package tracing
