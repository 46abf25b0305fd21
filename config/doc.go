// Package config provides read-only access to the string-keyed configuration
// that a Kafka client hands to its interceptors and plugins.
//
// Kafka clients configure interceptors through an untyped map of configuration
// properties (the map passed to the interceptor's configure hook). This package
// wraps that map behind the Source interface so the rest of the kit can resolve
// options without caring about the concrete value types the client uses.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" Go idiom:
//   - Source interface: Defines the contract for configuration lookups
//   - MapSource struct: Concrete implementation over map[string]interface{}
//   - Option struct: A (key, default) pair describing one configurable behavior
//
// All lookups are pure and repeatable: a Source never mutates its backing data,
// caches nothing, and produces the same answer for the same key every time.
// This makes Sources safe to share across goroutines without synchronization.
//
// # Basic Usage
//
//	import "github.com/aalemi-dev/tracekit/config"
//
//	// The raw properties map as delivered by the Kafka client.
//	src := config.NewMapSource(map[string]interface{}{
//		"zipkin.sender.type":   "HTTP",
//		"zipkin.http.endpoint": "http://zipkin:9411/api/v2/spans",
//		"bootstrap.servers":    []string{"broker-1:9092", "broker-2:9092"},
//	})
//
//	endpoint := src.GetStringOrDefault("zipkin.http.endpoint", "http://localhost:9411/api/v2/spans")
//
// Options bundle a key with its documented default:
//
//	senderType := config.Option{Key: "zipkin.sender.type", Default: "NONE"}
//	value := senderType.Get(src)
package config
