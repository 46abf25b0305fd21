package tracing

import (
	"time"

	"github.com/aalemi-dev/tracekit/logger"
	"github.com/aalemi-dev/tracekit/observability"
)

// BuildOption customizes pipeline assembly beyond what the configuration
// source carries: collaborators (logger, observer), reporter tuning, and
// test seams.
type BuildOption func(*buildOptions)

type buildOptions struct {
	log           logger.Logger
	observer      observability.Observer
	sender        Sender
	serializer    SpanSerializer
	queueCapacity int
	batchSize     int
	flushInterval time.Duration
	sendTimeout   time.Duration
}

func defaultBuildOptions() *buildOptions {
	return &buildOptions{
		queueCapacity: DefaultQueueCapacity,
		batchSize:     DefaultBatchSize,
		flushInterval: DefaultFlushInterval,
		sendTimeout:   DefaultSendTimeout,
	}
}

// WithLogger sets the logger used for the sampling-rate degradation warning
// and the reporter's background diagnostics. Without a logger those events
// are silent.
func WithLogger(log logger.Logger) BuildOption {
	return func(o *buildOptions) {
		o.log = log
	}
}

// WithObserver attaches an observer notified of every report, drop, and send
// operation on the export path.
func WithObserver(observer observability.Observer) BuildOption {
	return func(o *buildOptions) {
		o.observer = observer
	}
}

// WithSender replaces the configuration-selected transport with a custom
// one. The sender type option is ignored when this is set; the encoding
// option is still resolved and validated.
func WithSender(sender Sender) BuildOption {
	return func(o *buildOptions) {
		o.sender = sender
	}
}

// WithSpanSerializer replaces the serializer derived from the encoding
// option. Hosts that select the PROTO3 encoding use this to supply their
// protobuf marshal function.
func WithSpanSerializer(serializer SpanSerializer) BuildOption {
	return func(o *buildOptions) {
		o.serializer = serializer
	}
}

// WithQueueCapacity bounds the reporter's span buffer. When the buffer is
// full the newest spans are dropped.
func WithQueueCapacity(capacity int) BuildOption {
	return func(o *buildOptions) {
		if capacity > 0 {
			o.queueCapacity = capacity
		}
	}
}

// WithBatchSize sets the maximum number of spans delivered per send.
func WithBatchSize(size int) BuildOption {
	return func(o *buildOptions) {
		if size > 0 {
			o.batchSize = size
		}
	}
}

// WithFlushInterval sets how long a partial batch may wait before it is
// sent anyway.
func WithFlushInterval(interval time.Duration) BuildOption {
	return func(o *buildOptions) {
		if interval > 0 {
			o.flushInterval = interval
		}
	}
}

// WithSendTimeout bounds a single delivery attempt on the background export
// path.
func WithSendTimeout(timeout time.Duration) BuildOption {
	return func(o *buildOptions) {
		if timeout > 0 {
			o.sendTimeout = timeout
		}
	}
}
