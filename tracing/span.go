package tracing

import (
	"encoding/json"
	"fmt"
)

// Endpoint identifies a network participant of a span, typically the service
// that produced it.
type Endpoint struct {
	ServiceName string `json:"serviceName,omitempty"`
	IPv4        string `json:"ipv4,omitempty"`
	IPv6        string `json:"ipv6,omitempty"`
	Port        int    `json:"port,omitempty"`
}

// Span is a single timed operation record in a distributed trace, in the
// Zipkin v2 shape. Identifiers are lower-hex strings: 16 or 32 characters
// for TraceID depending on the configured width, 16 for ID and ParentID.
// Timestamp and Duration are epoch microseconds and microseconds.
type Span struct {
	TraceID        string            `json:"traceId"`
	ParentID       string            `json:"parentId,omitempty"`
	ID             string            `json:"id"`
	Kind           string            `json:"kind,omitempty"`
	Name           string            `json:"name,omitempty"`
	Timestamp      int64             `json:"timestamp,omitempty"`
	Duration       int64             `json:"duration,omitempty"`
	LocalEndpoint  *Endpoint         `json:"localEndpoint,omitempty"`
	RemoteEndpoint *Endpoint         `json:"remoteEndpoint,omitempty"`
	Tags           map[string]string `json:"tags,omitempty"`
	Shared         bool              `json:"shared,omitempty"`
}

// Span kinds understood by Zipkin collectors. For a message-broker client,
// PRODUCER and CONSUMER are the ones that matter.
const (
	SpanKindClient   = "CLIENT"
	SpanKindServer   = "SERVER"
	SpanKindProducer = "PRODUCER"
	SpanKindConsumer = "CONSUMER"
)

// JSONSpanSerializer encodes spans as Zipkin v2 JSON.
// This is the default serializer of the pipeline.
type JSONSpanSerializer struct{}

// Serialize converts the span to its JSON wire form.
func (s *JSONSpanSerializer) Serialize(span *Span) ([]byte, error) {
	encoded, err := json.Marshal(span)
	if err != nil {
		return nil, fmt.Errorf("JSONSpanSerializer: failed to serialize: %w", err)
	}
	return encoded, nil
}

// ProtoSpanSerializer encodes spans with a caller-supplied protobuf marshal
// function. This package does not carry generated protobuf bindings for the
// Zipkin span schema; hosts that select the PROTO3 encoding supply their own
// marshal function instead.
//
// Example:
//
//	serializer := &tracing.ProtoSpanSerializer{
//	    MarshalFunc: func(span *tracing.Span) ([]byte, error) {
//	        return proto.Marshal(toZipkinProto(span))
//	    },
//	}
//	t, err := tracing.NewTracing(src, tracing.WithSpanSerializer(serializer))
type ProtoSpanSerializer struct {
	// MarshalFunc converts the span to its proto3 wire form.
	// Serialize fails when nil.
	MarshalFunc func(span *Span) ([]byte, error)
}

// Serialize converts the span using MarshalFunc.
func (s *ProtoSpanSerializer) Serialize(span *Span) ([]byte, error) {
	if s.MarshalFunc == nil {
		return nil, fmt.Errorf("ProtoSpanSerializer: %w", ErrSerializerMissing)
	}
	encoded, err := s.MarshalFunc(span)
	if err != nil {
		return nil, fmt.Errorf("ProtoSpanSerializer: failed to serialize: %w", err)
	}
	return encoded, nil
}
