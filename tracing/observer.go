package tracing

import (
	"time"

	"github.com/aalemi-dev/tracekit/observability"
)

// observeOperation safely calls the observer if it's not nil.
// This helper reduces boilerplate on the reporter's hot paths.
func (r *Reporter) observeOperation(operation string, duration time.Duration, err error, size int64) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveOperation(observability.OperationContext{
		Component: "tracing",
		Operation: operation,
		Duration:  duration,
		Error:     err,
		Size:      size,
	})
}
