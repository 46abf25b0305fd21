package config

import "fmt"

// MapSource adapts the untyped configuration map handed over by a Kafka
// client into the Source interface. Values in the backing map may be:
//
//   - string: returned by GetString / GetStringOrDefault
//   - []string or []interface{} of strings: returned by GetStringList
//   - fmt.Stringer: stringified and treated like a string value
//
// Any other value type is treated as absent. MapSource never writes to the
// backing map, so it is safe to share across goroutines as long as the host
// does not mutate the map concurrently (Kafka clients hand interceptors a
// snapshot, so in practice the map is frozen).
//
// MapSource implements the Source interface.
type MapSource struct {
	props map[string]interface{}
}

// NewMapSource creates a Source backed by the given properties map.
// The map is used as-is without copying; the caller must not mutate it
// after handing it over.
//
// Example:
//
//	src := config.NewMapSource(map[string]interface{}{
//		"zipkin.sender.type": "KAFKA",
//		"bootstrap.servers":  []string{"broker-1:9092"},
//	})
func NewMapSource(props map[string]interface{}) *MapSource {
	return &MapSource{props: props}
}

// GetString returns the string value for key. Absent keys, list values,
// and values of unsupported types all yield the empty string.
func (m *MapSource) GetString(key string) string {
	raw, ok := m.props[key]
	if !ok {
		return ""
	}
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

// GetStringOrDefault returns the string value for key, or def when the key
// is absent or not string-shaped. A present-but-empty string wins over the
// default, mirroring how Kafka clients resolve properties.
func (m *MapSource) GetStringOrDefault(key, def string) string {
	raw, ok := m.props[key]
	if !ok {
		return def
	}
	switch v := raw.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return def
	}
}

// GetStringList returns the list value for key. Kafka clients may deliver
// list-typed properties either as []string or as []interface{} whose
// elements are strings; both are supported. Absent keys and scalar values
// yield nil.
func (m *MapSource) GetStringList(key string) []string {
	raw, ok := m.props[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := elem.(string); ok {
				out = append(out, s)
			}
		}
		if len(out) == 0 {
			return nil
		}
		return out
	default:
		return nil
	}
}
