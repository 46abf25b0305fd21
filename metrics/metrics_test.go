package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/tracekit/observability"
)

func TestNewObserverClient(t *testing.T) {
	t.Parallel()

	t.Run("registers collectors", func(t *testing.T) {
		t.Parallel()
		registry := prometheus.NewRegistry()
		o, err := NewObserverClient(Config{Registerer: registry})
		require.NoError(t, err)
		require.NotNil(t, o)
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		t.Parallel()
		registry := prometheus.NewRegistry()
		_, err := NewObserverClient(Config{Registerer: registry})
		require.NoError(t, err)
		_, err = NewObserverClient(Config{Registerer: registry})
		assert.Error(t, err)
	})
}

func TestObserveOperation(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	o, err := NewObserverClient(Config{Registerer: registry, ServiceName: "test"})
	require.NoError(t, err)

	o.ObserveOperation(observability.OperationContext{
		Component: "tracing",
		Operation: "report",
		Size:      1,
	})
	o.ObserveOperation(observability.OperationContext{
		Component: "tracing",
		Operation: "report",
		Size:      1,
	})
	o.ObserveOperation(observability.OperationContext{
		Component: "sender",
		Operation: "send",
		Duration:  25 * time.Millisecond,
		Error:     errors.New("broker unreachable"),
		Size:      64,
	})

	reportLabels := prometheus.Labels{"component": "tracing", "operation": "report"}
	sendLabels := prometheus.Labels{"component": "sender", "operation": "send"}

	assert.Equal(t, 2.0, testutil.ToFloat64(o.operations.With(reportLabels)))
	assert.Equal(t, 0.0, testutil.ToFloat64(o.errors.With(reportLabels)))
	assert.Equal(t, 2.0, testutil.ToFloat64(o.sizes.With(reportLabels)))

	assert.Equal(t, 1.0, testutil.ToFloat64(o.operations.With(sendLabels)))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.errors.With(sendLabels)))
	assert.Equal(t, 64.0, testutil.ToFloat64(o.sizes.With(sendLabels)))
}

func TestMetricsFXModule(t *testing.T) {
	t.Parallel()

	var client *ObserverClient
	var observer observability.Observer

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config {
			return Config{Registerer: prometheus.NewRegistry()}
		}),
		fx.Populate(&client, &observer),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, client)
	require.NotNil(t, observer)
	assert.Same(t, client, observer)
}
