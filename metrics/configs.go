package metrics

import "github.com/prometheus/client_golang/prometheus"

// DefaultNamespace is the metric name prefix used when Config.Namespace
// is left empty.
const DefaultNamespace = "tracekit"

// Config defines the configuration for the Prometheus observer.
type Config struct {
	// Namespace is the prefix applied to every metric name.
	// Defaults to DefaultNamespace when empty.
	Namespace string

	// ServiceName is attached to every series as a constant "service" label
	// so metrics from multiple services can be separated in a shared
	// Prometheus. Omitted when empty.
	ServiceName string

	// Registerer is the Prometheus registerer the observer registers its
	// collectors with. Defaults to prometheus.DefaultRegisterer when nil.
	// Tests typically pass prometheus.NewRegistry() here to keep series
	// isolated between test cases.
	Registerer prometheus.Registerer
}
