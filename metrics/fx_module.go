package metrics

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/tracekit/observability"
)

// FXModule is an fx.Module that provides the Prometheus observer.
//
// The module provides:
// 1. *ObserverClient (concrete type) for direct use
// 2. observability.Observer interface for dependency injection
//
// Packages that take an optional observer (the tracing module in particular)
// pick it up automatically when this module is present in the application.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "orders-producer"}
//	    }),
//	    // other modules...
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewObserverClient, // Provides *ObserverClient
		// Also provide the Observer interface
		fx.Annotate(
			func(o *ObserverClient) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
)
