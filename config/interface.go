package config

// Source provides read-only access to string-keyed configuration values.
// It abstracts the untyped property map a Kafka client passes to its
// interceptors, exposing lookups for single values and value lists.
//
// Implementations must be pure: lookups have no side effects, perform no
// caching, and return the same result for the same key on every call.
// A Source is owned by the host for the lifetime of pipeline assembly and
// must never be mutated while in use.
//
// This interface is implemented by the concrete MapSource type.
type Source interface {
	// GetString returns the string value for key, or the empty string when
	// the key is absent or its value is not string-shaped.
	GetString(key string) string

	// GetStringOrDefault returns the string value for key, or def when the
	// key is absent or its value is not string-shaped. A present-but-empty
	// value is returned as-is, not replaced by the default.
	GetStringOrDefault(key, def string) string

	// GetStringList returns the list value for key, or nil when the key is
	// absent or its value is not list-shaped. The returned slice is a copy;
	// callers may retain or modify it freely.
	GetStringList(key string) []string
}

// Option describes a single configurable behavior as a (key, default) pair.
// Every option consumed by this kit is expressed as exactly one Option value;
// Options are plain immutable values and must not be modified after assembly
// begins.
type Option struct {
	// Key is the configuration property name looked up in the Source.
	Key string

	// Default is the value used when Key is absent from the Source.
	Default string
}

// Get resolves the option against src, falling back to the declared default
// when the key is absent.
func (o Option) Get(src Source) string {
	return src.GetStringOrDefault(o.Key, o.Default)
}
