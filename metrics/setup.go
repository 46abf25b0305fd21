package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aalemi-dev/tracekit/observability"
)

// ObserverClient translates observed operations into Prometheus series.
// It keeps one counter for operations, one for errors, one histogram for
// durations, and one counter for operation sizes, all labeled by component
// and operation so a small, bounded set of series covers every package in
// the kit.
//
// ObserverClient implements the observability.Observer interface and is safe
// for concurrent use.
type ObserverClient struct {
	operations *prometheus.CounterVec
	errors     *prometheus.CounterVec
	durations  *prometheus.HistogramVec
	sizes      *prometheus.CounterVec
}

// NewObserverClient creates an observer and registers its collectors with the
// configured registerer.
//
// Registration fails when another collector with the same fully-qualified
// names already exists on the registerer; in that case the error from the
// Prometheus client is returned as-is.
func NewObserverClient(cfg Config) (*ObserverClient, error) {
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = DefaultNamespace
	}

	registerer := cfg.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	var constLabels prometheus.Labels
	if cfg.ServiceName != "" {
		constLabels = prometheus.Labels{"service": cfg.ServiceName}
	}

	labels := []string{"component", "operation"}

	o := &ObserverClient{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "operations_total",
			Help:        "Total number of completed operations.",
			ConstLabels: constLabels,
		}, labels),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "operation_errors_total",
			Help:        "Total number of failed operations.",
			ConstLabels: constLabels,
		}, labels),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "operation_duration_seconds",
			Help:        "Latency of operations that take measurable time.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, labels),
		sizes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "operation_size_total",
			Help:        "Total data units processed by operations (spans, bytes).",
			ConstLabels: constLabels,
		}, labels),
	}

	for _, collector := range []prometheus.Collector{o.operations, o.errors, o.durations, o.sizes} {
		if err := registerer.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register collector: %w", err)
		}
	}

	return o, nil
}

// ObserveOperation records one completed operation.
// Durations are only recorded for operations that report a non-zero duration,
// keeping instantaneous operations (enqueue, drop) out of the latency
// histogram.
func (o *ObserverClient) ObserveOperation(ctx observability.OperationContext) {
	labels := prometheus.Labels{
		"component": ctx.Component,
		"operation": ctx.Operation,
	}

	o.operations.With(labels).Inc()

	if ctx.Error != nil {
		o.errors.With(labels).Inc()
	}
	if ctx.Duration > 0 {
		o.durations.With(labels).Observe(ctx.Duration.Seconds())
	}
	if ctx.Size > 0 {
		o.sizes.With(labels).Add(float64(ctx.Size))
	}
}
