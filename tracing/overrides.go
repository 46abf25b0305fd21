package tracing

import (
	"strings"

	"github.com/aalemi-dev/tracekit/config"
)

// resolveCredentialOverrides extracts the security sub-namespace of the
// configuration and remaps it to the key-space the Kafka client expects.
//
// It walks the fixed allow-list of override keys (SASL JAAS config and
// mechanism, security protocol, TLS endpoint identification algorithm); for
// each key that is present with a non-empty value, the "zipkin." prefix is
// stripped and the pair inserted into the result. Absent and empty values
// are skipped entirely - they must never appear as blank entries, which
// would mask the sender's own client defaults.
//
// The result is a minimal override set that layers on top of whatever base
// connection configuration the sender otherwise derives.
func resolveCredentialOverrides(src config.Source) map[string]string {
	overrides := make(map[string]string, len(credentialOverrideKeys))
	for _, key := range credentialOverrideKeys {
		value := src.GetString(key)
		if value == "" {
			continue
		}
		overrides[strings.TrimPrefix(key, zipkinPrefix)] = value
	}
	return overrides
}
