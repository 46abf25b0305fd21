package tracing

import (
	"encoding/binary"
	"fmt"

	"github.com/aalemi-dev/tracekit/config"
)

// Encoding is the span wire encoding shared by the serializer, the sender,
// and the downstream collector. The value is passed through the pipeline
// uniformly; whether the collector actually speaks it is the operator's
// contract, not something this package can detect.
type Encoding string

// Recognized span encodings.
const (
	// EncodingJSON is the Zipkin v2 JSON encoding, the baseline format.
	EncodingJSON Encoding = "JSON"

	// EncodingProto3 is the Zipkin proto3 encoding.
	EncodingProto3 Encoding = "PROTO3"
)

// MediaType returns the MIME type senders attach to batches of this encoding.
func (e Encoding) MediaType() string {
	switch e {
	case EncodingProto3:
		return "application/x-protobuf"
	default:
		return "application/json"
	}
}

// resolveEncoding reads the encoding option and validates it against the
// recognized set. Unknown names are fatal.
func resolveEncoding(src config.Source) (Encoding, error) {
	value := encodingOption.Get(src)
	switch Encoding(value) {
	case EncodingJSON:
		return EncodingJSON, nil
	case EncodingProto3:
		return EncodingProto3, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, value)
	}
}

// encodeBatch frames a batch of already-encoded spans for transport.
//
// JSON spans are framed as a JSON array. PROTO3 spans are framed as the
// Zipkin ListOfSpans message: each span is a length-delimited occurrence of
// field 1, so the frame is built without protobuf bindings.
func encodeBatch(encoding Encoding, spans [][]byte) []byte {
	switch encoding {
	case EncodingProto3:
		var body []byte
		for _, span := range spans {
			body = append(body, 0x0a) // field 1, wire type 2
			body = binary.AppendUvarint(body, uint64(len(span)))
			body = append(body, span...)
		}
		return body
	default:
		body := make([]byte, 0, batchJSONSize(spans))
		body = append(body, '[')
		for i, span := range spans {
			if i > 0 {
				body = append(body, ',')
			}
			body = append(body, span...)
		}
		return append(body, ']')
	}
}

func batchJSONSize(spans [][]byte) int {
	size := 2 // brackets
	for _, span := range spans {
		size += len(span) + 1
	}
	return size
}
