package tracing

import (
	"fmt"
	"strings"

	"github.com/aalemi-dev/tracekit/config"
)

// SenderType enumerates the mutually exclusive transport strategies.
// Exactly one is selected per assembly.
type SenderType string

const (
	// SenderNone computes tracing data but never exports it.
	SenderNone SenderType = "NONE"

	// SenderHTTP exports span batches to a Zipkin-compatible HTTP collector.
	SenderHTTP SenderType = "HTTP"

	// SenderKafka exports span batches through a Kafka topic.
	SenderKafka SenderType = "KAFKA"
)

// resolveSender reads the sender type option and constructs the selected
// transport. A nil Sender with a nil error means NONE was selected: the
// facade is assembled without an export sink.
//
// The encoding is resolved before the branch, so an unknown encoding is
// fatal even when the sender is NONE - the misconfiguration should surface
// at assembly time, not when someone later flips the sender on.
func resolveSender(src config.Source) (Sender, error) {
	encoding, err := resolveEncoding(src)
	if err != nil {
		return nil, err
	}

	value := senderTypeOption.Get(src)
	switch SenderType(value) {
	case SenderNone:
		return nil, nil
	case SenderHTTP:
		return newHTTPSender(src, encoding), nil
	case SenderKafka:
		return newKafkaSender(src, encoding)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSenderType, value)
	}
}

// resolveBootstrapServers resolves the brokers for the KAFKA sender through
// a three-level fallback chain: the tracing-specific override key, then the
// client's own bootstrap key in string form, then the client's bootstrap key
// in list form joined with commas.
func resolveBootstrapServers(src config.Source) string {
	return src.GetStringOrDefault(BootstrapServersConfig,
		src.GetStringOrDefault(clientBootstrapServersConfig,
			strings.Join(src.GetStringList(clientBootstrapServersConfig), ",")))
}
