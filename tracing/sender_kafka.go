package tracing

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl"
	"github.com/segmentio/kafka-go/sasl/plain"
	"github.com/segmentio/kafka-go/sasl/scram"

	"github.com/aalemi-dev/tracekit/config"
)

// Client-configuration keys understood by the KAFKA sender, i.e. the
// override keys with their "zipkin." prefix already stripped.
const (
	overrideSecurityProtocol          = "security.protocol"
	overrideSASLMechanism             = "sasl.mechanism"
	overrideSASLJAAS                  = "sasl.jaas.config"
	overrideSSLEndpointIdentification = "ssl.endpoint.identification.algorithm"
)

// KafkaSender publishes encoded span batches to a Kafka topic, one message
// per batch, for a broker-side collector to consume.
//
// KafkaSender implements the Sender interface.
type KafkaSender struct {
	writer   *kafka.Writer
	topic    string
	encoding Encoding
}

// newKafkaSender constructs the broker-native transport.
//
// Bootstrap servers come from the three-level fallback chain; the resolved
// credential overrides are applied on top of the writer's base dialer
// configuration. Missing bootstrap servers and unusable security overrides
// are configuration errors and abort assembly; an unreachable broker is not
// detected here - that failure surfaces asynchronously on the export path.
func newKafkaSender(src config.Source, encoding Encoding) (*KafkaSender, error) {
	bootstrapServers := resolveBootstrapServers(src)
	if bootstrapServers == "" {
		return nil, ErrMissingBootstrapServers
	}

	overrides := resolveCredentialOverrides(src)
	dialer, err := newDialer(overrides)
	if err != nil {
		return nil, err
	}

	topic := kafkaTopicOption.Get(src)
	writer := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  strings.Split(bootstrapServers, ","),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
		Dialer:   dialer,
	})

	return &KafkaSender{writer: writer, topic: topic, encoding: encoding}, nil
}

// Topic returns the topic this sender publishes span batches to.
func (s *KafkaSender) Topic() string {
	return s.topic
}

// Encoding returns the span encoding this sender was built for.
func (s *KafkaSender) Encoding() Encoding {
	return s.encoding
}

// Send publishes one batch of encoded spans as a single message.
func (s *KafkaSender) Send(ctx context.Context, spans [][]byte) error {
	err := s.writer.WriteMessages(ctx, kafka.Message{
		Value: encodeBatch(s.encoding, spans),
	})
	if err != nil {
		return fmt.Errorf("failed to publish spans to topic %s: %w", s.topic, err)
	}
	return nil
}

// Close shuts down the underlying Kafka writer.
func (s *KafkaSender) Close() error {
	return s.writer.Close()
}

// newDialer builds the writer's dialer from the credential overrides.
// The security protocol decides which of TLS and SASL are enabled:
//
//	PLAINTEXT       neither (the default)
//	SSL             TLS only
//	SASL_PLAINTEXT  SASL only
//	SASL_SSL        both
func newDialer(overrides map[string]string) (*kafka.Dialer, error) {
	protocol, ok := overrides[overrideSecurityProtocol]
	if !ok {
		protocol = "PLAINTEXT"
	}

	var useTLS, useSASL bool
	switch protocol {
	case "PLAINTEXT":
	case "SSL":
		useTLS = true
	case "SASL_PLAINTEXT":
		useSASL = true
	case "SASL_SSL":
		useTLS = true
		useSASL = true
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSecurityProtocol, protocol)
	}

	dialer := &kafka.Dialer{}

	if useTLS {
		tlsConfig := &tls.Config{}
		// The Kafka convention: any endpoint identification algorithm other
		// than https means hostname verification is off.
		if algorithm, ok := overrides[overrideSSLEndpointIdentification]; ok && algorithm != "https" {
			tlsConfig.InsecureSkipVerify = true
		}
		dialer.TLS = tlsConfig
	}

	if useSASL {
		mechanism, err := newSASLMechanism(overrides)
		if err != nil {
			return nil, err
		}
		dialer.SASLMechanism = mechanism
	}

	return dialer, nil
}

// newSASLMechanism builds the SASL mechanism from the overrides, taking the
// username and password from the JAAS configuration the Kafka client hands
// over verbatim.
func newSASLMechanism(overrides map[string]string) (sasl.Mechanism, error) {
	username, password, err := parseJAASCredentials(overrides[overrideSASLJAAS])
	if err != nil {
		return nil, err
	}

	mechanismName, ok := overrides[overrideSASLMechanism]
	if !ok {
		mechanismName = "PLAIN"
	}

	switch mechanismName {
	case "PLAIN":
		return plain.Mechanism{Username: username, Password: password}, nil
	case "SCRAM-SHA-256":
		return scram.Mechanism(scram.SHA256, username, password)
	case "SCRAM-SHA-512":
		return scram.Mechanism(scram.SHA512, username, password)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSASLMechanism, mechanismName)
	}
}

// parseJAASCredentials extracts username and password from a JAAS login
// module line such as:
//
//	org.apache.kafka.common.security.plain.PlainLoginModule required
//	  username="alice" password="s3cret";
func parseJAASCredentials(jaas string) (username, password string, err error) {
	username = jaasValue(jaas, "username")
	password = jaasValue(jaas, "password")
	if username == "" || password == "" {
		return "", "", fmt.Errorf("%w: username/password not found", ErrMalformedJAASConfig)
	}
	return username, password, nil
}

// jaasValue returns the double-quoted value of key within a JAAS line, or
// the empty string when absent.
func jaasValue(jaas, key string) string {
	marker := key + "="
	idx := strings.Index(jaas, marker)
	if idx < 0 {
		return ""
	}
	rest := jaas[idx+len(marker):]
	if len(rest) < 2 || rest[0] != '"' {
		return ""
	}
	rest = rest[1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return ""
	}
	return rest[:end]
}
