// Package observability defines a unified observer interface for the kit.
//
// Infrastructure packages in this kit (the tracing pipeline, its senders)
// report their operations through the Observer interface without being coupled
// to a specific metrics, logging, or alerting implementation. An Observer is
// always optional: packages work fine without one.
//
// The metrics package provides a Prometheus-backed Observer; hosts can supply
// their own implementation instead.
package observability
