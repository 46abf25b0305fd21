package tracing

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewTracingDefaults(t *testing.T) {
	t.Parallel()

	tr, err := NewTracing(sourceWith(nil))
	require.NoError(t, err)
	defer tr.Close(context.Background())

	assert.Equal(t, "kafka", tr.LocalServiceName())
	assert.False(t, tr.TraceID128Bit())
	assert.Equal(t, 1.0, tr.SamplerRate())
	assert.Nil(t, tr.Reporter(), "NONE sender means no export path")
}

func TestNewTracingFullKafkaConfiguration(t *testing.T) {
	t.Parallel()

	log, logs := newObservedLogger()
	tr, err := NewTracing(sourceWith(map[string]interface{}{
		LocalServiceNameConfig:     "orders-producer",
		TraceID128BitEnabledConfig: "true",
		SenderTypeConfig:           "KAFKA",
		BootstrapServersConfig:     "broker:9092",
		KafkaTopicConfig:           "zipkin",
		SamplerRateConfig:          "0.25",
	}), WithLogger(log))
	require.NoError(t, err)
	defer tr.Close(context.Background())

	assert.Equal(t, "orders-producer", tr.LocalServiceName())
	assert.True(t, tr.TraceID128Bit())
	assert.Equal(t, 0.25, tr.SamplerRate())
	assert.NotNil(t, tr.Reporter())
	assert.Equal(t, 0, logs.Len(), "a valid configuration emits no warnings")
}

func TestNewTracingDegradesOnInvalidSamplerRate(t *testing.T) {
	t.Parallel()

	log, logs := newObservedLogger()
	tr, err := NewTracing(sourceWith(map[string]interface{}{
		SamplerRateConfig: "2.0",
	}), WithLogger(log))
	require.NoError(t, err, "an invalid rate must not abort assembly")
	defer tr.Close(context.Background())

	assert.Equal(t, SamplerRateFallback, tr.SamplerRate())
	assert.False(t, tr.Sampler().IsSampled(tr.NewTraceID()))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "2.0", entry.ContextMap()["rate"])
}

func TestNewTracingFatalMisconfiguration(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		props map[string]interface{}
		want  error
	}{
		"unknown sender type": {
			props: map[string]interface{}{SenderTypeConfig: "GRPC"},
			want:  ErrUnknownSenderType,
		},
		"unknown encoding": {
			props: map[string]interface{}{EncodingConfig: "THRIFT"},
			want:  ErrUnknownEncoding,
		},
		"unknown encoding with NONE sender": {
			props: map[string]interface{}{
				SenderTypeConfig: "NONE",
				EncodingConfig:   "THRIFT",
			},
			want: ErrUnknownEncoding,
		},
		"malformed 128-bit flag": {
			props: map[string]interface{}{TraceID128BitEnabledConfig: "yes please"},
			want:  ErrMalformedBoolean,
		},
		"kafka sender without brokers": {
			props: map[string]interface{}{SenderTypeConfig: "KAFKA"},
			want:  ErrMissingBootstrapServers,
		},
	}

	for name, tc := range cases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tr, err := NewTracing(sourceWith(tc.props))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, tr, "no partial facade on fatal misconfiguration")
		})
	}
}

func TestTraceIDWidth(t *testing.T) {
	t.Parallel()

	t.Run("64-bit identifiers have a zero high half", func(t *testing.T) {
		t.Parallel()
		tr, err := NewTracing(sourceWith(nil))
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			id := tr.NewTraceID()
			require.True(t, id.IsValid())
			assert.Equal(t, [8]byte{}, [8]byte(id[:8]))
			assert.Len(t, tr.FormatTraceID(id), 16)
		}
	})

	t.Run("128-bit identifiers use all sixteen bytes", func(t *testing.T) {
		t.Parallel()
		tr, err := NewTracing(sourceWith(map[string]interface{}{
			TraceID128BitEnabledConfig: "true",
		}))
		require.NoError(t, err)

		sawNonZeroHigh := false
		for i := 0; i < 100; i++ {
			id := tr.NewTraceID()
			require.True(t, id.IsValid())
			assert.Len(t, tr.FormatTraceID(id), 32)
			if [8]byte(id[:8]) != ([8]byte{}) {
				sawNonZeroHigh = true
			}
		}
		assert.True(t, sawNonZeroHigh, "random 128-bit identifiers should not all collapse to 64 bits")
	})

	t.Run("span identifiers are never zero", func(t *testing.T) {
		t.Parallel()
		tr, err := NewTracing(sourceWith(nil))
		require.NoError(t, err)
		for i := 0; i < 100; i++ {
			assert.True(t, tr.NewSpanID().IsValid())
		}
	})
}

func TestReportSpan(t *testing.T) {
	t.Parallel()

	span := func() *Span {
		return &Span{
			TraceID:   "0000000000000001",
			ID:        "0000000000000002",
			Kind:      SpanKindProducer,
			Name:      "send",
			Timestamp: time.Now().UnixMicro(),
			Duration:  120,
		}
	}

	t.Run("sampled spans are serialized and enqueued", func(t *testing.T) {
		t.Parallel()
		sender := &captureSender{}
		tr, err := NewTracing(sourceWith(nil), WithSender(sender), WithBatchSize(1))
		require.NoError(t, err)

		require.NoError(t, tr.ReportSpan(span()))
		require.NoError(t, tr.Close(context.Background()))
		assert.Equal(t, 1, sender.spanCount())
	})

	t.Run("missing local endpoint is filled with the service identity", func(t *testing.T) {
		t.Parallel()
		sender := &captureSender{}
		tr, err := NewTracing(sourceWith(map[string]interface{}{
			LocalServiceNameConfig: "orders-producer",
		}), WithSender(sender))
		require.NoError(t, err)

		require.NoError(t, tr.ReportSpan(span()))
		require.NoError(t, tr.Close(context.Background()))

		require.Equal(t, 1, sender.spanCount())
		var decoded Span
		require.NoError(t, json.Unmarshal(sender.batches[0][0], &decoded))
		require.NotNil(t, decoded.LocalEndpoint)
		assert.Equal(t, "orders-producer", decoded.LocalEndpoint.ServiceName)
	})

	t.Run("an explicit local endpoint is left alone", func(t *testing.T) {
		t.Parallel()
		sender := &captureSender{}
		tr, err := NewTracing(sourceWith(nil), WithSender(sender))
		require.NoError(t, err)

		s := span()
		s.LocalEndpoint = &Endpoint{ServiceName: "checkout", Port: 8080}
		require.NoError(t, tr.ReportSpan(s))
		require.NoError(t, tr.Close(context.Background()))

		var decoded Span
		require.NoError(t, json.Unmarshal(sender.batches[0][0], &decoded))
		assert.Equal(t, "checkout", decoded.LocalEndpoint.ServiceName)
	})

	t.Run("declined spans are never enqueued", func(t *testing.T) {
		t.Parallel()
		sender := &captureSender{}
		tr, err := NewTracing(sourceWith(map[string]interface{}{
			SamplerRateConfig: "-1", // degrades to never-sample
		}), WithSender(sender))
		require.NoError(t, err)

		require.NoError(t, tr.ReportSpan(span()))
		require.NoError(t, tr.Close(context.Background()))
		assert.Equal(t, 0, sender.spanCount())
	})

	t.Run("without a sender the span is discarded", func(t *testing.T) {
		t.Parallel()
		tr, err := NewTracing(sourceWith(nil))
		require.NoError(t, err)
		assert.NoError(t, tr.ReportSpan(span()))
	})

	t.Run("malformed trace identifier is an error", func(t *testing.T) {
		t.Parallel()
		tr, err := NewTracing(sourceWith(nil))
		require.NoError(t, err)

		s := span()
		s.TraceID = "not-hex"
		assert.Error(t, tr.ReportSpan(s))
	})

	t.Run("PROTO3 without a marshal function fails at report time", func(t *testing.T) {
		t.Parallel()
		sender := &captureSender{}
		tr, err := NewTracing(sourceWith(map[string]interface{}{
			EncodingConfig: "PROTO3",
		}), WithSender(sender))
		require.NoError(t, err, "assembly succeeds; the serializer complains on use")

		err = tr.ReportSpan(span())
		assert.ErrorIs(t, err, ErrSerializerMissing)
	})

	t.Run("PROTO3 with a marshal function round-trips", func(t *testing.T) {
		t.Parallel()
		sender := &captureSender{}
		tr, err := NewTracing(sourceWith(map[string]interface{}{
			EncodingConfig: "PROTO3",
		}),
			WithSender(sender),
			WithSpanSerializer(&ProtoSpanSerializer{
				MarshalFunc: func(span *Span) ([]byte, error) {
					return []byte(span.Name), nil
				},
			}),
		)
		require.NoError(t, err)

		require.NoError(t, tr.ReportSpan(span()))
		require.NoError(t, tr.Close(context.Background()))
		require.Equal(t, 1, sender.spanCount())
		assert.Equal(t, "send", string(sender.batches[0][0]))
	})
}

func TestReportBypassesSamplerAndSerializer(t *testing.T) {
	t.Parallel()

	sender := &captureSender{}
	tr, err := NewTracing(sourceWith(map[string]interface{}{
		SamplerRateConfig: "-1",
	}), WithSender(sender))
	require.NoError(t, err)

	tr.Report([]byte(`{"traceId":"1","id":"2"}`))
	require.NoError(t, tr.Close(context.Background()))
	assert.Equal(t, 1, sender.spanCount())
}

func TestCloseWithoutSenderIsANoOp(t *testing.T) {
	t.Parallel()

	tr, err := NewTracing(sourceWith(nil))
	require.NoError(t, err)
	assert.NoError(t, tr.Close(context.Background()))
	assert.NoError(t, tr.Close(context.Background()))
}
