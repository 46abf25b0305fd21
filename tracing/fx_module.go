package tracing

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/tracekit/config"
	"github.com/aalemi-dev/tracekit/logger"
	"github.com/aalemi-dev/tracekit/observability"
)

// FXModule is an fx.Module that assembles and manages the tracing pipeline.
//
// The module provides:
// 1. *Tracing (concrete type) for direct use
// 2. Tracer interface for dependency injection
// 3. Lifecycle management: the pipeline is flushed and closed on shutdown
//
// Usage:
//
//	app := fx.New(
//	    tracing.FXModule,
//	    logger.FXModule,  // optional: enables degradation warnings
//	    metrics.FXModule, // optional: enables export-path metrics
//	    fx.Provide(func() config.Source {
//	        return config.NewMapSource(props)
//	    }),
//	)
var FXModule = fx.Module("tracing",
	fx.Provide(
		NewTracingWithDI, // Provides *Tracing
		// Also provide the Tracer interface
		fx.Annotate(
			func(t *Tracing) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracingLifecycle),
)

// Params groups the dependencies needed to assemble the pipeline.
type Params struct {
	fx.In

	Source   config.Source
	Logger   logger.Logger          `optional:"true"` // Optional logger for warnings and diagnostics
	Observer observability.Observer `optional:"true"` // Optional observer for export-path operations
}

// NewTracingWithDI assembles the pipeline using dependency injection.
// The optional logger and observer are threaded through as build options
// when present in the application graph.
func NewTracingWithDI(params Params) (*Tracing, error) {
	var opts []BuildOption
	if params.Logger != nil {
		opts = append(opts, WithLogger(params.Logger))
	}
	if params.Observer != nil {
		opts = append(opts, WithObserver(params.Observer))
	}
	return NewTracing(params.Source, opts...)
}

// RegisterTracingLifecycle registers the shutdown hook for the pipeline.
// On stop, buffered spans are flushed and the background export path is
// closed; spans recorded after that point are discarded.
//
// This function is automatically invoked by the FXModule and does not need
// to be called directly in application code.
func RegisterTracingLifecycle(lc fx.Lifecycle, t *Tracing) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return t.Close(ctx)
		},
	})
}
