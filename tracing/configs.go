package tracing

import (
	"time"

	"github.com/aalemi-dev/tracekit/config"
)

// Configuration keys consumed by the pipeline builder. All of them live in
// the "zipkin." namespace of the Kafka client's property map, except the
// generic bootstrap key which is read as a fallback.
const (
	// LocalServiceNameConfig names the service these spans are reported for.
	LocalServiceNameConfig = "zipkin.local.service.name"

	// TraceID128BitEnabledConfig selects 128-bit trace identifiers when
	// "true"; 64-bit when "false".
	TraceID128BitEnabledConfig = "zipkin.trace.id.128bit.enabled"

	// SenderTypeConfig selects the transport: NONE, HTTP, or KAFKA.
	SenderTypeConfig = "zipkin.sender.type"

	// EncodingConfig selects the span wire encoding: JSON or PROTO3.
	EncodingConfig = "zipkin.encoding"

	// HTTPEndpointConfig is the collector URL used when the sender is HTTP.
	HTTPEndpointConfig = "zipkin.http.endpoint"

	// BootstrapServersConfig overrides the brokers the KAFKA sender connects
	// to. When absent, the generic client bootstrap key is used instead.
	BootstrapServersConfig = "zipkin.bootstrap.servers"

	// KafkaTopicConfig is the topic the KAFKA sender publishes span batches to.
	KafkaTopicConfig = "zipkin.kafka.topic"

	// SamplerRateConfig is the probability in (0, 1] that a trace is recorded.
	SamplerRateConfig = "zipkin.sampler.rate"

	// Security override keys. Values are copied into the KAFKA sender's
	// client configuration with the "zipkin." prefix stripped, and only
	// when non-empty.
	SASLJAASConfig                  = "zipkin.sasl.jaas.config"
	SASLMechanismConfig             = "zipkin.sasl.mechanism"
	SecurityProtocolConfig          = "zipkin.security.protocol"
	SSLEndpointIdentificationConfig = "zipkin.ssl.endpoint.identification.algorithm"

	// clientBootstrapServersConfig is the Kafka client's own bootstrap key,
	// read as the last two levels of the bootstrap fallback chain.
	clientBootstrapServersConfig = "bootstrap.servers"

	// zipkinPrefix is stripped from override keys to derive the key the
	// Kafka client expects.
	zipkinPrefix = "zipkin."
)

// Options pairing each configurable behavior with its documented default.
var (
	localServiceNameOption     = config.Option{Key: LocalServiceNameConfig, Default: "kafka"}
	traceID128BitEnabledOption = config.Option{Key: TraceID128BitEnabledConfig, Default: "false"}
	senderTypeOption           = config.Option{Key: SenderTypeConfig, Default: string(SenderNone)}
	encodingOption             = config.Option{Key: EncodingConfig, Default: string(EncodingJSON)}
	httpEndpointOption         = config.Option{Key: HTTPEndpointConfig, Default: "http://localhost:9411/api/v2/spans"}
	kafkaTopicOption           = config.Option{Key: KafkaTopicConfig, Default: "zipkin"}
	samplerRateOption          = config.Option{Key: SamplerRateConfig, Default: "1.0"}
)

// credentialOverrideKeys is the fixed allow-list of configuration keys copied
// into the KAFKA sender's client configuration.
var credentialOverrideKeys = []string{
	SASLJAASConfig,
	SASLMechanismConfig,
	SecurityProtocolConfig,
	SSLEndpointIdentificationConfig,
}

// Defaults for the asynchronous reporter and senders.
const (
	// SamplerRateFallback replaces an out-of-range or unparseable sampling
	// rate. Tracing degrades to "record nothing" rather than failing startup.
	SamplerRateFallback = 0.0

	// DefaultQueueCapacity bounds the reporter's in-memory span buffer.
	DefaultQueueCapacity = 1000

	// DefaultBatchSize is the maximum number of spans delivered per send.
	DefaultBatchSize = 100

	// DefaultFlushInterval is how long a partial batch may wait before it is
	// sent anyway.
	DefaultFlushInterval = time.Second

	// DefaultSendTimeout bounds a single delivery attempt on the background
	// export path.
	DefaultSendTimeout = 5 * time.Second

	// DefaultHTTPTimeout bounds a single HTTP POST to the collector.
	DefaultHTTPTimeout = 10 * time.Second
)
