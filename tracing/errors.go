package tracing

import (
	"errors"
	"fmt"
)

// ErrInvalidConfiguration is the root of all fatal configuration errors.
// When NewTracing returns an error wrapping this value, no facade was
// produced and the host must not proceed with tracing enabled.
var ErrInvalidConfiguration = errors.New("invalid tracing configuration")

// Fatal configuration errors. Each wraps ErrInvalidConfiguration so callers
// can treat the whole family with a single errors.Is check.
var (
	// ErrUnknownSenderType is returned when the sender type option is not one
	// of NONE, HTTP, KAFKA. This aborts assembly: a typo here would misroute
	// all trace data.
	ErrUnknownSenderType = fmt.Errorf("%w: unknown sender type", ErrInvalidConfiguration)

	// ErrUnknownEncoding is returned when the encoding option is not one of
	// the recognized span encodings.
	ErrUnknownEncoding = fmt.Errorf("%w: unknown span encoding", ErrInvalidConfiguration)

	// ErrMalformedBoolean is returned when a boolean option holds text that
	// strconv.ParseBool does not accept.
	ErrMalformedBoolean = fmt.Errorf("%w: malformed boolean value", ErrInvalidConfiguration)

	// ErrMissingBootstrapServers is returned when the KAFKA sender is selected
	// but no bootstrap servers can be resolved through the fallback chain.
	ErrMissingBootstrapServers = fmt.Errorf("%w: bootstrap servers missing for KAFKA sender", ErrInvalidConfiguration)

	// ErrUnknownSecurityProtocol is returned when the security protocol
	// override is not one of PLAINTEXT, SSL, SASL_PLAINTEXT, SASL_SSL.
	ErrUnknownSecurityProtocol = fmt.Errorf("%w: unknown security protocol", ErrInvalidConfiguration)

	// ErrUnknownSASLMechanism is returned when the SASL mechanism override is
	// not one of PLAIN, SCRAM-SHA-256, SCRAM-SHA-512.
	ErrUnknownSASLMechanism = fmt.Errorf("%w: unknown SASL mechanism", ErrInvalidConfiguration)

	// ErrMalformedJAASConfig is returned when SASL is enabled but no
	// username/password pair can be extracted from the JAAS configuration.
	ErrMalformedJAASConfig = fmt.Errorf("%w: malformed JAAS configuration", ErrInvalidConfiguration)
)

// ErrSerializerMissing is returned by ReportSpan when the configured encoding
// requires a caller-supplied marshal function that was not provided.
var ErrSerializerMissing = errors.New("span serializer not configured for encoding")
