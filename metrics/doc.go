// Package metrics provides a Prometheus-backed implementation of the
// observability.Observer interface.
//
// Every operation reported by the kit's packages (span enqueue, drop, batch
// send) is turned into a small, fixed set of Prometheus series labeled by
// component and operation:
//
//   - <namespace>_operations_total: counter of completed operations
//   - <namespace>_operation_errors_total: counter of failed operations
//   - <namespace>_operation_duration_seconds: histogram of operation latency
//   - <namespace>_operation_size_total: counter of data units processed
//     (spans per batch, bytes per span - whatever the operation reports)
//
// # Basic Usage
//
//	observer, err := metrics.NewObserverClient(metrics.Config{
//	    ServiceName: "orders-producer",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	tracing.NewTracing(src, tracing.WithObserver(observer))
//
// # Fx Usage
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "orders-producer"}
//	    }),
//	)
package metrics
