// Package config loads runtime configuration for the admin console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON or YAML file (see parseFile) selected via -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   address:port of the backend gRPC endpoint
//	-i int      request timeout (seconds)
//	-r string   restaurant id
//	-f string   session database file
//	-l string   log file
//	-y string   snapshot policy: remote-wins or keep-dirty
//
// # File schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	server_endpoint_addr: 127.0.0.1:50051
//	request_timeout: 10s
//	restaurant_id: kaffeewerk
//	snapshot_policy: keep-dirty
package config
