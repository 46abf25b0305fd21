package observability

import "time"

// Observer is a unified interface for observability across the kit's packages.
// It allows external code to observe operations happening inside infrastructure
// components (the span reporter, the HTTP and Kafka senders) without coupling
// them to a specific observability implementation.
//
// This interface is optional - the kit's packages work fine without an observer.
type Observer interface {
	// ObserveOperation is called when an infrastructure operation completes.
	// It provides all context about the operation in a structured format.
	ObserveOperation(ctx OperationContext)
}

// OperationContext contains all information about an infrastructure operation.
type OperationContext struct {
	// Component identifies which package performed the operation.
	// Examples: "tracing", "sender"
	Component string

	// Operation describes what operation was performed.
	// Examples:
	//   Reporter: "report" (span enqueued), "drop" (span discarded, queue full)
	//   Sender:   "send" (batch delivered to the collector)
	Operation string

	// Resource identifies the primary resource being operated on.
	// Examples:
	//   HTTP sender:  the collector endpoint URL
	//   Kafka sender: the topic name
	Resource string

	// Duration is how long the operation took from start to completion.
	// Zero for instantaneous operations such as enqueue and drop.
	Duration time.Duration

	// Error is the error returned by the operation, if any.
	// nil indicates a successful operation.
	Error error

	// Size represents the amount of data involved in the operation.
	// Examples: number of spans in a batch, bytes of an encoded span.
	Size int64

	// Metadata provides additional operation-specific information (optional).
	// Examples: {"encoding": "JSON", "dropped_total": "17"}
	Metadata map[string]interface{}
}
